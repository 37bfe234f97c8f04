package report

import (
	"encoding/json"
	"errors"
	"net/http"

	"fsr/internal/editor"
	"fsr/internal/response"
	"fsr/internal/validation"
)

// GetReport handles GET /api/v1/report.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.respondState(w)
}

// UpdateFields handles PUT /api/v1/report: a JSON object of scalar
// fields by their JSON names, applied in one UI event. Date and time
// values are shape-checked; everything else is free text by contract.
func (h *Handler) UpdateFields(w http.ResponseWriter, r *http.Request) {
	var fields map[string]interface{}
	if err := response.DecodeBody(r, &fields); err != nil {
		response.Err(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var ve validation.ValidationErrors
	if v, ok := fields["date"].(string); ok {
		validation.ValidateDate(&ve, "date", v)
	}
	if v, ok := fields["time"].(string); ok {
		validation.ValidateTime(&ve, "time", v)
	}
	if ve.HasErrors() {
		response.Err(w, ve.Error(), http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for field, value := range fields {
		if err := h.ed.UpdateField(field, value); err != nil {
			mutErr(w, err)
			return
		}
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "updated")
	h.respondState(w)
}

// Finalize handles POST /api/v1/report/finalize. A gate failure keeps
// the editor in Editing and reports the offending field inline.
func (h *Handler) Finalize(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ed.Finalize(); err != nil {
		var ve *editor.ValidationError
		if errors.As(err, &ve) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error":      ve.Message,
				"validation": ve,
			})
			return
		}
		response.Err(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.Hub.ReportChanged(h.ed.Report().SlNo, "finalized")
	h.respondState(w)
}

// Edit handles POST /api/v1/report/edit: back from preview to the
// editable draft. Signatures cover a specific finalized snapshot, so
// reopening the draft discards both slots.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ed.Edit()
	h.sigs.Clear(editor.SlotCustomer)
	h.sigs.Clear(editor.SlotEngineer)

	h.Hub.ReportChanged(h.ed.Report().SlNo, "reopened")
	h.respondState(w)
}
