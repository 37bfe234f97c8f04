package export_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"fsr/internal/config"
	"fsr/internal/export"
	"fsr/internal/render"
)

// pngDataURI builds a small valid PNG payload the way the capture widget
// delivers one.
func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.Black)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPDFFilename(t *testing.T) {
	org := config.Default().Org
	if got := export.PDFFilename(org, "NSPL-2025-4821"); got != "NSPL_Report_NSPL-2025-4821.pdf" {
		t.Fatalf("filename = %q", got)
	}
}

func TestWritePDF(t *testing.T) {
	r := sampleReport()
	r.Photos = []string{pngDataURI(t)}
	doc := render.Render(r, render.SignatureImages{
		Customer: pngDataURI(t),
		Engineer: pngDataURI(t),
	}, config.Default().Org)

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}
	if buf.Len() < 1000 {
		t.Fatalf("suspiciously small output: %d bytes", buf.Len())
	}
}

func TestWritePDFSkipsUndecodablePhotos(t *testing.T) {
	r := sampleReport()
	r.Photos = []string{
		"data:image/png;base64,AAAA",
		"not a data uri at all",
		pngDataURI(t),
	}
	doc := render.Render(r, render.SignatureImages{}, config.Default().Org)

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, doc); err != nil {
		t.Fatalf("write with bad payloads: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not start with a PDF header")
	}
}

func TestWritePDFEmptyRegister(t *testing.T) {
	r := sampleReport()
	r.Hardware = nil
	doc := render.Render(r, render.SignatureImages{}, config.Default().Org)

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
}
