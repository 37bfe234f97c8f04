package render

import (
	"fmt"
	"html"
	"strings"
)

// WriteHTML serializes a document as a self-contained, print-ready HTML
// page. This is what the print action consumes; the browser's print
// facility does the rest.
func WriteHTML(doc Document) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>` + html.EscapeString(doc.Title+" — "+doc.Ref) + `</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Arial, Helvetica, sans-serif; font-size: 11pt; color: #000; padding: 0.5in; }
  h1 { font-size: 18pt; margin-bottom: 2pt; }
  h2 { font-size: 12pt; margin: 16pt 0 6pt; border-bottom: 2px solid #000; padding-bottom: 3pt; }
  table { width: 100%; border-collapse: collapse; margin-bottom: 12pt; }
  th, td { border: 1px solid #000; padding: 4pt 6pt; text-align: left; font-size: 10pt; }
  th { background: #eee; font-weight: bold; }
  .header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 3px solid #000; padding-bottom: 8pt; margin-bottom: 12pt; }
  .header-right { text-align: right; font-size: 10pt; }
  .info-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 4pt 20pt; margin-bottom: 12pt; font-size: 10pt; }
  .info-grid dt { font-weight: bold; }
  .block { border: 1px solid #000; padding: 8pt; margin-bottom: 12pt; font-size: 10pt; white-space: pre-wrap; }
  .gallery { page-break-before: always; display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 8pt; }
  .gallery img { width: 100%; border: 1px solid #999; }
  .signoff { display: grid; grid-template-columns: 1fr 1fr; gap: 40pt; margin-top: 30pt; font-size: 10pt; text-align: center; }
  .sigline { border-bottom: 2px dashed #666; height: 50pt; margin-bottom: 6pt; }
  .sigline img { max-height: 48pt; }
  .footer { margin-top: 24pt; border-top: 2px solid #000; padding-top: 6pt; font-size: 8pt; text-align: center; color: #333; }
  @media print { body { padding: 0; } @page { margin: 0.5in; } }
</style>
</head><body>
`)

	fmt.Fprintf(&b, `<div class="header">
  <div>
    <h1>%s</h1>
    <div style="font-size:10pt;color:#555">%s</div>
  </div>
  <div class="header-right">
    <div><strong>REF:</strong> %s</div>
  </div>
</div>
`, html.EscapeString(doc.Org.Name), html.EscapeString(doc.Title), html.EscapeString(doc.Ref))

	b.WriteString(`<h2>Site Details</h2>` + "\n" + `<div class="info-grid">` + "\n")
	for _, f := range doc.Header {
		fmt.Fprintf(&b, "  <dt>%s:</dt><dd>%s</dd>\n", html.EscapeString(f.Label), html.EscapeString(f.Value))
	}
	b.WriteString("</div>\n")

	b.WriteString(`<h2>Technical Parameters</h2>` + "\n" + `<div class="info-grid">` + "\n")
	for _, f := range doc.Technical {
		fmt.Fprintf(&b, "  <dt>%s:</dt><dd>%s</dd>\n", html.EscapeString(f.Label), html.EscapeString(f.Value))
	}
	b.WriteString("</div>\n")

	fmt.Fprintf(&b, "<h2>Initial Fault</h2>\n<div class=\"block\">%s</div>\n", html.EscapeString(doc.Fault))

	b.WriteString("<h2>Hardware Component Log</h2>\n<table>\n<tr>")
	for _, col := range doc.Hardware.Columns {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(col))
	}
	b.WriteString("</tr>\n")
	if doc.Hardware.Placeholder != "" {
		fmt.Fprintf(&b, `<tr><td colspan="%d" style="text-align:center;color:#999">%s</td></tr>`+"\n",
			len(doc.Hardware.Columns), html.EscapeString(doc.Hardware.Placeholder))
	}
	for _, row := range doc.Hardware.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	fmt.Fprintf(&b, "<h2>Actions Taken &amp; Technical Notes</h2>\n<div class=\"block\">%s</div>\n", html.EscapeString(doc.Observations))
	fmt.Fprintf(&b, "<h2>Service Quality Assurance</h2>\n<div class=\"block\">Customer Feedback Rating: <strong>%s</strong></div>\n", html.EscapeString(doc.Feedback))

	if doc.Photos != nil {
		b.WriteString("<h2 style=\"page-break-before: always\">Photographic Evidence</h2>\n<div class=\"gallery\" style=\"page-break-before: auto\">\n")
		for i, img := range doc.Photos.Images {
			fmt.Fprintf(&b, `  <img src="%s" alt="Site evidence %d">`+"\n", html.EscapeString(img), i+1)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(`<div class="signoff">` + "\n")
	for _, sig := range doc.Signatures {
		b.WriteString("  <div>\n")
		if sig.Image != "" {
			fmt.Fprintf(&b, `    <div class="sigline"><img src="%s" alt="%s"></div>`+"\n",
				html.EscapeString(sig.Image), html.EscapeString(sig.Label))
		} else {
			b.WriteString(`    <div class="sigline"></div>` + "\n")
		}
		fmt.Fprintf(&b, "    <div><strong>%s</strong></div>\n", html.EscapeString(sig.Label))
		fmt.Fprintf(&b, "    <div>%s</div>\n", html.EscapeString(sig.Name))
		if sig.Detail != "" {
			fmt.Fprintf(&b, "    <div>%s</div>\n", html.EscapeString(sig.Detail))
		}
		b.WriteString("  </div>\n")
	}
	b.WriteString("</div>\n")

	fmt.Fprintf(&b, `<div class="footer">%s</div>`+"\n", html.EscapeString(doc.Footer))
	b.WriteString("</body></html>\n")
	return b.String()
}
