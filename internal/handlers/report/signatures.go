package report

import (
	"net/http"

	"fsr/internal/editor"
	"fsr/internal/response"
)

// GetSignatures handles GET /api/v1/report/signatures: slot population
// and the derived export-ready flag.
func (h *Handler) GetSignatures(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	response.JSON(w, h.sigs.Status())
}

// SetSignature handles PUT /api/v1/report/signatures/{slot} with
// {"payload": "data:..."}. An empty payload clears the slot. Signatures
// attach to a finalized snapshot, so the report must be in preview.
func (h *Handler) SetSignature(w http.ResponseWriter, r *http.Request, slot string) {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := response.DecodeBody(r, &body); err != nil {
		response.Err(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.ed.State() != editor.StatePreview {
		response.Err(w, "finalize the report before signing", http.StatusConflict)
		return
	}
	if err := h.sigs.Set(slot, body.Payload); err != nil {
		response.Err(w, err.Error(), http.StatusBadRequest)
		return
	}

	action := "signed"
	if body.Payload == "" {
		action = "signature_cleared"
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, action)
	response.JSON(w, h.sigs.Status())
}
