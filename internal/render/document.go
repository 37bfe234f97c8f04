// Package render maps a finalized service report to a structured,
// print-ready document. Rendering is a pure function of its inputs:
// no clock reads, no mutation, so two renders of the same report are
// structurally identical.
package render

import (
	"strconv"
	"strings"

	"fsr/internal/config"
	"fsr/internal/models"
)

// Placeholder marks a blank optional field on the rendered report.
// Explicit, so a blank cell is never ambiguous with a missing one.
const Placeholder = "—"

// Field is one labelled value in a document block.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is the hardware register. When there are no rows the
// Placeholder row text is rendered instead of an empty body.
type Table struct {
	Columns     []string   `json:"columns"`
	Rows        [][]string `json:"rows"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// Gallery is the photographic evidence block. Absent entirely when the
// report has no photos; when present it carries a page-break hint so
// paginated output starts it on a fresh page.
type Gallery struct {
	StartsNewPage bool     `json:"starts_new_page"`
	Images        []string `json:"images"`
}

// SignatureLine is one sign-off slot: an embedded image when signed,
// otherwise a blank placeholder line.
type SignatureLine struct {
	Label  string `json:"label"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Image  string `json:"image,omitempty"`
}

// OrgBlock identifies the service organization in header and footer.
type OrgBlock struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Website string `json:"website"`
}

// Document is the renderer's output tree. Print, PDF export and (in
// part) email all consume this same structure.
type Document struct {
	Title        string          `json:"title"`
	Org          OrgBlock        `json:"org"`
	Ref          string          `json:"ref"`
	Header       []Field         `json:"header"`
	Technical    []Field         `json:"technical"`
	Fault        string          `json:"fault"`
	Hardware     Table           `json:"hardware"`
	Observations string          `json:"observations"`
	Feedback     string          `json:"feedback"`
	Photos       *Gallery        `json:"photos,omitempty"`
	Signatures   []SignatureLine `json:"signatures"`
	Footer       string          `json:"footer"`
}

// SignatureImages carries the two sign-off payloads captured against a
// finalized snapshot. Either may be empty.
type SignatureImages struct {
	Customer string
	Engineer string
}

// Render builds the document for a report. The report is passed by
// value and untouched.
func Render(r models.ServiceReport, sigs SignatureImages, org config.Org) Document {
	doc := Document{
		Title: "Site Intervention Report",
		Org: OrgBlock{
			Name:    org.Name,
			Address: org.Address,
			Email:   org.Email,
			Website: org.Website,
		},
		Ref: r.SlNo,
		Header: []Field{
			{Label: "Date", Value: orDash(r.Date)},
			{Label: "Time In", Value: orDash(r.Time)},
			{Label: "Status", Value: orDash(r.Status)},
			{Label: "Complaint No", Value: orDash(r.ComplaintNo)},
			{Label: "Customer Name", Value: orDash(r.CustomerName)},
			{Label: "Site Location", Value: orDash(r.Location)},
			{Label: "Client Contact", Value: orDash(r.ClientName)},
			{Label: "Mobile No", Value: orDash(r.ClientMobile)},
			{Label: "Equipment / Product", Value: productLine(r)},
		},
		Technical: []Field{
			{Label: "Environment", Value: orDash(r.Environment)},
			{Label: "Op. Mode", Value: orDash(r.OperationMode)},
			{Label: "Voltage (L-L)", Value: voltage(r.VoltageLL)},
			{Label: "Voltage (L-N)", Value: voltage(r.VoltageLN)},
		},
		Fault:        fallback(r.NatureOfFault, "No specific fault logged."),
		Hardware:     hardwareTable(r.Hardware),
		Observations: fallback(r.Observations, "No field observations recorded for this visit."),
		Feedback:     orDash(r.FeedbackRating),
		Signatures: []SignatureLine{
			{
				Label: "Customer / Client Seal",
				Name:  fallback(r.ClientName, r.CustomerName),
				Image: sigs.Customer,
			},
			{
				Label:  "Field Engineer",
				Name:   orDash(r.EngineerName),
				Detail: engineerDetail(r.TechnicianMobile),
				Image:  sigs.Engineer,
			},
		},
		Footer: footerLine(org),
	}

	if len(r.Photos) > 0 {
		photos := make([]string, len(r.Photos))
		copy(photos, r.Photos)
		doc.Photos = &Gallery{StartsNewPage: true, Images: photos}
	}
	return doc
}

func hardwareTable(items []models.HardwareItem) Table {
	t := Table{
		Columns: []string{"Component", "Make / Model", "Rating", "Qty", "Condition"},
	}
	if len(items) == 0 {
		t.Placeholder = "Inventory list is empty"
		return t
	}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{
			orDash(item.Type),
			orDash(strings.TrimSpace(item.Make + " " + item.Model)),
			orDash(item.Rating),
			strconv.Itoa(item.Quantity),
			orDash(item.Condition),
		})
	}
	return t
}

func productLine(r models.ServiceReport) string {
	p := orDash(r.Product)
	if r.PanelID != "" {
		p += " (TAG: " + r.PanelID + ")"
	}
	return p
}

func voltage(v string) string {
	if strings.TrimSpace(v) == "" {
		return Placeholder
	}
	return v + " VAC"
}

func engineerDetail(mobile string) string {
	if strings.TrimSpace(mobile) == "" {
		return ""
	}
	return "MOB: " + mobile
}

func footerLine(org config.Org) string {
	parts := []string{org.Name}
	if org.Address != "" {
		parts = append(parts, org.Address)
	}
	if org.Email != "" {
		parts = append(parts, "Email: "+org.Email)
	}
	if org.Website != "" {
		parts = append(parts, "URL: "+org.Website)
	}
	return strings.Join(parts, " | ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func fallback(s, alt string) string {
	if strings.TrimSpace(s) == "" {
		return alt
	}
	return s
}
