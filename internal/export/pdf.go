package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"fsr/internal/config"
	"fsr/internal/render"
)

// PDFFilename names the PDF download for a report.
func PDFFilename(org config.Org, slNo string) string {
	return fmt.Sprintf("%s_Report_%s.pdf", org.Short, slNo)
}

// WritePDF serializes a rendered document as a paginated A4 PDF. The
// photo gallery, when present, always starts on a fresh page.
func WritePDF(w io.Writer, doc render.Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Title+" "+doc.Ref, true)
	pdf.SetAutoPageBreak(true, 18)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(0, 5, tr(doc.Footer), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(130, 9, tr(doc.Org.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 9, "REF: "+doc.Ref, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(doc.Title), "B", 1, "L", false, 0, "")
	pdf.Ln(4)

	fieldGrid(pdf, tr, doc.Header)

	sectionTitle(pdf, tr, "Technical Parameters")
	fieldGrid(pdf, tr, doc.Technical)

	sectionTitle(pdf, tr, "Initial Fault")
	textBlock(pdf, tr, doc.Fault)

	sectionTitle(pdf, tr, "Hardware Component Log")
	hardwarePDFTable(pdf, tr, doc.Hardware)

	sectionTitle(pdf, tr, "Actions Taken & Technical Notes")
	textBlock(pdf, tr, doc.Observations)

	sectionTitle(pdf, tr, "Service Quality Assurance")
	textBlock(pdf, tr, "Customer Feedback Rating: "+doc.Feedback)

	if doc.Photos != nil {
		pdf.AddPage()
		sectionTitle(pdf, tr, "Photographic Evidence")
		photoGrid(pdf, doc.Photos.Images)
	}

	signatureBlock(pdf, tr, doc.Signatures)

	return pdf.Output(w)
}

func sectionTitle(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

// fieldGrid lays label/value pairs two to a row.
func fieldGrid(pdf *fpdf.Fpdf, tr func(string) string, fields []render.Field) {
	for i, f := range fields {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(35, 6, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		ln := 0
		if i%2 == 1 || i == len(fields)-1 {
			ln = 1
		}
		pdf.CellFormat(60, 6, tr(f.Value), "", ln, "L", false, 0, "")
	}
	pdf.Ln(1)
}

func textBlock(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(text), "1", "L", false)
}

func hardwarePDFTable(pdf *fpdf.Fpdf, tr func(string) string, t render.Table) {
	widths := []float64{42, 58, 30, 15, 45}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range t.Columns {
		pdf.CellFormat(widths[i], 7, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if t.Placeholder != "" {
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(190, 7, tr(t.Placeholder), "1", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			align := "L"
			if i == 3 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// photoGrid lays evidence images three to a row, placeholder frame for
// any payload that does not decode.
func photoGrid(pdf *fpdf.Fpdf, images []string) {
	const (
		imgW = 60.0
		imgH = 45.0
		gap  = 4.0
	)
	y := pdf.GetY()
	for i, uri := range images {
		col := i % 3
		if col == 0 && i > 0 {
			y += imgH + gap
		}
		if y+imgH > 260 {
			pdf.AddPage()
			y = pdf.GetY()
		}
		x := 10 + float64(col)*(imgW+gap)
		if name, opt, ok := registerDataURI(pdf, fmt.Sprintf("photo-%d", i), uri); ok {
			pdf.ImageOptions(name, x, y, imgW, imgH, false, opt, 0, "")
		} else {
			pdf.Rect(x, y, imgW, imgH, "D")
		}
	}
	pdf.SetY(y + imgH + gap)
}

func signatureBlock(pdf *fpdf.Fpdf, tr func(string) string, sigs []render.SignatureLine) {
	y := pdf.GetY() + 14
	if y > 235 {
		pdf.AddPage()
		y = pdf.GetY() + 14
	}

	xs := []float64{15, 115}
	for i, sig := range sigs {
		if i >= len(xs) {
			break
		}
		x := xs[i]
		if sig.Image != "" {
			if name, opt, ok := registerDataURI(pdf, fmt.Sprintf("sig-%d", i), sig.Image); ok {
				pdf.ImageOptions(name, x+5, y, 70, 24, false, opt, 0, "")
			}
		}
		pdf.Line(x, y+26, x+80, y+26)
		pdf.SetXY(x, y+28)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(80, 4, tr(sig.Label), "", 2, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(80, 5, tr(sig.Name), "", 2, "C", false, 0, "")
		if sig.Detail != "" {
			pdf.SetFont("Helvetica", "", 7)
			pdf.CellFormat(80, 4, tr(sig.Detail), "", 2, "C", false, 0, "")
		}
	}
	pdf.SetY(y + 44)
}

// registerDataURI decodes a base64 image data URI and registers it with
// the PDF. Payloads that are not valid JPEG/PNG are reported as not ok
// rather than poisoning the document.
func registerDataURI(pdf *fpdf.Fpdf, name, uri string) (string, fpdf.ImageOptions, bool) {
	typ, data, err := decodeDataURI(uri)
	if err != nil {
		return "", fpdf.ImageOptions{}, false
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fpdf.ImageOptions{}, false
	}
	opt := fpdf.ImageOptions{ImageType: typ}
	pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	return name, opt, true
}

// decodeDataURI splits a data:image/...;base64 URI into an fpdf image
// type and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, b64, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}
	mediaType := strings.TrimSuffix(meta, ";base64")

	var typ string
	switch mediaType {
	case "image/jpeg", "image/jpg":
		typ = "JPG"
	case "image/png":
		typ = "PNG"
	default:
		return "", nil, fmt.Errorf("unsupported image type %q", mediaType)
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", nil, err
	}
	return typ, data, nil
}
