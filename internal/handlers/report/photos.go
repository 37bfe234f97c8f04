package report

import (
	"net/http"
	"strconv"

	"fsr/internal/response"
)

// AddPhoto handles POST /api/v1/report/photos with {"payload": "data:..."}.
// The payload comes from the capture widget and is stored opaquely.
func (h *Handler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Payload string `json:"payload"`
	}
	if err := response.DecodeBody(r, &body); err != nil {
		response.Err(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.Payload == "" {
		// Capture was dismissed or unavailable; the photo list is untouched.
		response.Err(w, "empty photo payload", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ed.AddPhoto(body.Payload); err != nil {
		mutErr(w, err)
		return
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "photo_added")
	h.respondState(w)
}

// RemovePhoto handles DELETE /api/v1/report/photos/{index}. Out-of-range
// indices are a quiet no-op.
func (h *Handler) RemovePhoto(w http.ResponseWriter, r *http.Request, idx string) {
	index, err := strconv.Atoi(idx)
	if err != nil {
		response.Err(w, "photo index must be an integer", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.ed.RemovePhoto(index); err != nil {
		mutErr(w, err)
		return
	}
	h.Hub.ReportChanged(h.ed.Report().SlNo, "photo_removed")
	h.respondState(w)
}
