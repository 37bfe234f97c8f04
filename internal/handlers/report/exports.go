package report

import (
	"net/http"

	"fsr/internal/editor"
	"fsr/internal/export"
	"fsr/internal/render"
	"fsr/internal/response"
)

// document builds the rendered document for the current finalized
// snapshot. Callers hold the lock.
func (h *Handler) document() render.Document {
	return render.Render(h.ed.Report(), render.SignatureImages{
		Customer: h.sigs.Get(editor.SlotCustomer),
		Engineer: h.sigs.Get(editor.SlotEngineer),
	}, h.Cfg.Org)
}

// previewGuard enforces the two export preconditions: the report must
// be finalized, and in the signature-required profile both slots must
// be signed. Returns false after writing the refusal.
func (h *Handler) previewGuard(w http.ResponseWriter, signatureGated bool) bool {
	if h.ed.State() != editor.StatePreview {
		response.Err(w, "finalize the report first", http.StatusConflict)
		return false
	}
	if signatureGated && h.Cfg.RequireSignatures && !h.sigs.ExportReady() {
		response.Err(w, "both signatures are required before export", http.StatusConflict)
		return false
	}
	return true
}

// GetDocument handles GET /api/v1/report/document: the structured
// rendered document, as consumed by the preview surface.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.previewGuard(w, false) {
		return
	}
	response.JSON(w, h.document())
}

// PrintDocument handles GET /api/v1/report/print: the print-ready HTML
// page handed to the host's print facility.
func (h *Handler) PrintDocument(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.previewGuard(w, true) {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(render.WriteHTML(h.document())))
}

// ExportPDF handles GET /api/v1/report/pdf: the paginated PDF download,
// named from the report reference.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.previewGuard(w, true) {
		return
	}

	doc := h.document()
	slNo := h.ed.Report().SlNo

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.PDFFilename(h.Cfg.Org, slNo))
	if err := export.WritePDF(w, doc); err != nil {
		response.Err(w, err.Error(), http.StatusInternalServerError)
	}
}
