// Package editor owns the single in-session service report and is the
// only mutation surface over it. Centralizing every write here keeps the
// report invariants (stable reference, unique hardware ids, gated
// finalize) enforceable at one choke point instead of scattered across
// the UI layer.
package editor

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"fsr/internal/config"
	"fsr/internal/models"
)

// ViewState is the editor's position in the Editing <-> Preview machine.
type ViewState string

const (
	StateEditing ViewState = "editing"
	StatePreview ViewState = "preview"
)

// ErrLocked is returned by mutators while the report is finalized.
// Signatures apply to a specific finalized snapshot, so the draft must
// not drift underneath the preview; Edit() unlocks it again.
var ErrLocked = errors.New("report is finalized; return to edit first")

// Gate failure kinds, one per product variant.
const (
	KindMissingFeedback     = "missing_feedback"
	KindMissingObservations = "missing_observations"
)

// ValidationError is a finalize-gate failure. It is surfaced inline at
// the named field and never fatal: the editor stays in Editing.
type ValidationError struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Editor holds one ServiceReport for the life of the session.
type Editor struct {
	report models.ServiceReport
	state  ViewState
	policy string
	newID  func() string
}

// New creates an editor with a fresh report: reference assigned exactly
// once here, date/time stamped with the creation instant, and the
// product baseline defaults filled in.
func New(cfg config.Config) *Editor {
	now := time.Now()
	return &Editor{
		state:  StateEditing,
		policy: cfg.GatingPolicy,
		newID:  uuid.NewString,
		report: models.ServiceReport{
			SlNo:          NewReference(cfg.Org.Prefix),
			Date:          now.Format("2006-01-02"),
			Time:          now.Format("15:04"),
			Product:       "Main LT Panel",
			Environment:   "Normal",
			VoltageLL:     "415",
			VoltageLN:     "230",
			OperationMode: "Auto",
			Status:        "Open",
			Hardware:      []models.HardwareItem{},
			Photos:        []string{},
		},
	}
}

// NewReference builds a report reference: <PREFIX>-<YEAR>-<NNNN> with
// NNNN uniform in [1000, 9999]. Called once per report, never on render.
func NewReference(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().Year(), 1000+rand.Intn(9000))
}

// Report returns a deep copy of the current report. Callers never see
// editor-owned slices.
func (e *Editor) Report() models.ServiceReport {
	return e.report.Clone()
}

// State returns the current view state.
func (e *Editor) State() ViewState {
	return e.state
}

// AddHardwareItem appends a new register entry with a generated id and
// the baseline defaults (MCB, qty 1, condition Good).
func (e *Editor) AddHardwareItem() (models.HardwareItem, error) {
	if e.state != StateEditing {
		return models.HardwareItem{}, ErrLocked
	}
	item := models.HardwareItem{
		ID:        e.newID(),
		Type:      models.TypeMCB,
		Quantity:  1,
		Condition: "Good",
	}
	e.report.Hardware = append(e.report.Hardware, item)
	return item, nil
}

// RemoveHardwareItem removes the entry with the matching id, preserving
// the order of the rest. Unknown ids are a no-op, not an error.
func (e *Editor) RemoveHardwareItem(id string) error {
	if e.state != StateEditing {
		return ErrLocked
	}
	kept := e.report.Hardware[:0]
	for _, item := range e.report.Hardware {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	e.report.Hardware = kept
	return nil
}

// UpdateHardwareItem replaces one field of the matching entry. Unknown
// ids are a no-op. Values are taken as the UI sends them; there is no
// semantic validation here beyond basic type shape.
func (e *Editor) UpdateHardwareItem(id, field string, value interface{}) error {
	if e.state != StateEditing {
		return ErrLocked
	}
	for i := range e.report.Hardware {
		if e.report.Hardware[i].ID != id {
			continue
		}
		item := &e.report.Hardware[i]
		switch field {
		case "type":
			item.Type = asString(value)
		case "make":
			item.Make = asString(value)
		case "model":
			item.Model = asString(value)
		case "rating":
			item.Rating = asString(value)
		case "condition":
			item.Condition = asString(value)
		case "quantity":
			n, ok := asInt(value)
			if !ok {
				return fmt.Errorf("quantity must be numeric, got %T", value)
			}
			item.Quantity = n
		default:
			return fmt.Errorf("unknown hardware field %q", field)
		}
		return nil
	}
	return nil
}

// UpdateField sets one scalar report field by its JSON name. The report
// reference is assigned at creation and can never be written again.
func (e *Editor) UpdateField(field string, value interface{}) error {
	if e.state != StateEditing {
		return ErrLocked
	}
	v := asString(value)
	switch field {
	case "sl_no":
		return errors.New("sl_no is assigned at creation and immutable")
	case "complaint_no":
		e.report.ComplaintNo = v
	case "customer_name":
		e.report.CustomerName = v
	case "client_name":
		e.report.ClientName = v
	case "client_mobile":
		e.report.ClientMobile = v
	case "location":
		e.report.Location = v
	case "panel_id":
		e.report.PanelID = v
	case "date":
		e.report.Date = v
	case "time":
		e.report.Time = v
	case "product":
		e.report.Product = v
	case "nature_of_fault":
		e.report.NatureOfFault = v
	case "observations":
		e.report.Observations = v
	case "environment":
		e.report.Environment = v
	case "voltage_ll":
		e.report.VoltageLL = v
	case "voltage_ln":
		e.report.VoltageLN = v
	case "operation_mode":
		e.report.OperationMode = v
	case "status":
		e.report.Status = v
	case "engineer_name":
		e.report.EngineerName = v
	case "technician_mobile":
		e.report.TechnicianMobile = v
	case "customer_contact":
		e.report.CustomerContact = v
	case "feedback_rating":
		e.report.FeedbackRating = v
	default:
		return fmt.Errorf("unknown report field %q", field)
	}
	return nil
}

// AddPhoto appends an encoded image payload to the evidence list. The
// payload is opaque here; only the export adapters ever look inside it.
func (e *Editor) AddPhoto(payload string) error {
	if e.state != StateEditing {
		return ErrLocked
	}
	e.report.Photos = append(e.report.Photos, payload)
	return nil
}

// RemovePhoto drops the photo at the given position; later photos shift
// down by one. Out-of-range indices are a no-op.
func (e *Editor) RemovePhoto(index int) error {
	if e.state != StateEditing {
		return ErrLocked
	}
	kept := e.report.Photos[:0]
	for i, p := range e.report.Photos {
		if i != index {
			kept = append(kept, p)
		}
	}
	e.report.Photos = kept
	return nil
}

// Finalize runs the configured gate and, on success, moves the editor to
// Preview. On failure the editor stays in Editing and the returned
// *ValidationError names the offending field.
func (e *Editor) Finalize() error {
	if e.state == StatePreview {
		return nil
	}
	switch e.policy {
	case config.PolicyFeedback:
		if e.report.Status == "Closed" && strings.TrimSpace(e.report.FeedbackRating) == "" {
			return &ValidationError{
				Kind:    KindMissingFeedback,
				Field:   "feedback_rating",
				Message: "customer feedback is required for closed status",
			}
		}
	case config.PolicyRemarks:
		if strings.TrimSpace(e.report.Observations) == "" {
			return &ValidationError{
				Kind:    KindMissingObservations,
				Field:   "observations",
				Message: "record the actions taken before finalizing",
			}
		}
	}
	e.state = StatePreview
	return nil
}

// Edit returns a finalized report to the editable state.
func (e *Editor) Edit() {
	e.state = StateEditing
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
