package report

import (
	"net/http"

	"fsr/internal/export"
	"fsr/internal/response"
	"fsr/internal/validation"
)

// Email handles POST /api/v1/report/email with {"to": ..., "send": bool}.
// The address is shape-checked before anything else happens: an invalid
// address aborts with no hand-off of any kind. The default hand-off is
// a mailto: link the UI opens; "send" requests direct SMTP delivery
// where a relay is configured.
func (h *Handler) Email(w http.ResponseWriter, r *http.Request) {
	var body struct {
		To   string `json:"to"`
		Send bool   `json:"send"`
	}
	if err := response.DecodeBody(r, &body); err != nil {
		response.Err(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !validation.ValidEmail(body.To) {
		response.Err(w, "please enter a valid email address", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.previewGuard(w, false) {
		return
	}

	rep := h.ed.Report()
	subject := export.Subject(rep)
	emailBody := export.Body(rep, h.Cfg.Org)

	sent := false
	if body.Send {
		if !h.mailer.Enabled() {
			response.Err(w, "no SMTP relay configured", http.StatusConflict)
			return
		}
		if err := h.mailer.Send(body.To, subject, emailBody); err != nil {
			response.Err(w, "send failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		sent = true
	}

	response.JSON(w, map[string]interface{}{
		"mailto":  export.MailtoURL(body.To, rep, h.Cfg.Org),
		"subject": subject,
		"body":    emailBody,
		"sent":    sent,
	})
}
