package report

import (
	"net/http"

	"fsr/internal/export"
	"fsr/internal/response"
)

// AddHardware handles POST /api/v1/report/hardware. No inputs: the item
// is created with defaults and edited field by field afterwards.
func (h *Handler) AddHardware(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	item, err := h.ed.AddHardwareItem()
	if err != nil {
		mutErr(w, err)
		return
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "hardware_added")
	response.JSON(w, item)
}

// UpdateHardware handles PUT /api/v1/report/hardware/{id} with a body
// of {"field": ..., "value": ...}. Unknown ids are a quiet no-op.
func (h *Handler) UpdateHardware(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Field string      `json:"field"`
		Value interface{} `json:"value"`
	}
	if err := response.DecodeBody(r, &body); err != nil {
		response.Err(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ed.UpdateHardwareItem(id, body.Field, body.Value); err != nil {
		mutErr(w, err)
		return
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "hardware_updated")
	h.respondState(w)
}

// RemoveHardware handles DELETE /api/v1/report/hardware/{id}. Unknown
// ids are a quiet no-op.
func (h *Handler) RemoveHardware(w http.ResponseWriter, r *http.Request, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ed.RemoveHardwareItem(id); err != nil {
		mutErr(w, err)
		return
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "hardware_removed")
	h.respondState(w)
}

// ExportHardware handles GET /api/v1/report/hardware/export?format=csv|xlsx:
// the hardware register as a tabular download.
func (h *Handler) ExportHardware(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	h.mu.Lock()
	rep := h.ed.Report()
	h.mu.Unlock()

	rows := export.HardwareRows(rep)

	switch format {
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.RegisterFilename(h.Cfg.Org, rep.SlNo, "xlsx"))
		if err := export.WriteExcel(w, "Hardware", export.HardwareHeaders, rows); err != nil {
			response.Err(w, err.Error(), http.StatusInternalServerError)
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.RegisterFilename(h.Cfg.Org, rep.SlNo, "csv"))
		if err := export.WriteCSV(w, export.HardwareHeaders, rows); err != nil {
			response.Err(w, err.Error(), http.StatusInternalServerError)
		}
	default:
		response.Err(w, "unknown format "+format, http.StatusBadRequest)
	}
}
