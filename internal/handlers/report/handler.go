// Package report exposes the report editor, renderer and export
// adapters over HTTP. One handler owns one editor for the life of the
// process: this is a single-user, single-session tool and the mutex
// simply serializes UI events the way a browser event loop would.
package report

import (
	"net/http"
	"sync"

	"fsr/internal/config"
	"fsr/internal/editor"
	"fsr/internal/export"
	"fsr/internal/models"
	"fsr/internal/response"
	"fsr/internal/websocket"
)

// Handler holds the session state and dependencies for report handlers.
type Handler struct {
	Cfg config.Config
	Hub *websocket.Hub

	mu     sync.Mutex
	ed     *editor.Editor
	sigs   *editor.Signatures
	mailer *export.Mailer
}

// New creates a handler with a fresh report.
func New(cfg config.Config, hub *websocket.Hub) *Handler {
	return &Handler{
		Cfg:    cfg,
		Hub:    hub,
		ed:     editor.New(cfg),
		sigs:   &editor.Signatures{},
		mailer: export.NewMailer(cfg.SMTP, cfg.Org.Name),
	}
}

// reportState is the response shape for every mutation: the full report
// plus the current view state, so the UI never has to diff.
type reportState struct {
	Report models.ServiceReport `json:"report"`
	State  editor.ViewState     `json:"state"`
}

func (h *Handler) state() reportState {
	return reportState{Report: h.ed.Report(), State: h.ed.State()}
}

// respondState writes the current report + state envelope.
func (h *Handler) respondState(w http.ResponseWriter) {
	response.JSON(w, h.state())
}

// mutErr maps editor mutation errors onto HTTP codes: a finalized
// report refuses edits with 409, anything else is a bad request.
func mutErr(w http.ResponseWriter, err error) {
	if err == editor.ErrLocked {
		response.Err(w, err.Error(), http.StatusConflict)
		return
	}
	response.Err(w, err.Error(), http.StatusBadRequest)
}

// GetConfig handles GET /api/v1/config: the deployment profile plus the
// closed vocabularies the form UI offers.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, map[string]interface{}{
		"org":                h.Cfg.Org,
		"gating_policy":      h.Cfg.GatingPolicy,
		"require_signatures": h.Cfg.RequireSignatures,
		"smtp_enabled":       h.mailer.Enabled(),
		"ratings":            h.Cfg.Ratings,
		"fault_presets":      h.Cfg.FaultPresets,
		"component_types":    models.ComponentTypes,
		"conditions":         models.Conditions,
		"environments":       models.Environments,
		"operation_modes":    models.OperationModes,
		"statuses":           models.Statuses,
		"feedback_ratings":   models.FeedbackRatings,
	})
}
