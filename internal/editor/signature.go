package editor

import "fmt"

// Signature slots. Two independent sign-off points gate export in the
// signature-enabled deployment.
const (
	SlotCustomer = "customer"
	SlotEngineer = "engineer"
)

// Signatures tracks the two sign-off slots for a finalized report.
// They live with the preview/export stage and are never merged back
// into the editable report: a signature covers one specific snapshot.
type Signatures struct {
	customer string
	engineer string
}

// SignatureStatus is the JSON shape reported to the UI.
type SignatureStatus struct {
	Customer    bool `json:"customer"`
	Engineer    bool `json:"engineer"`
	ExportReady bool `json:"export_ready"`
}

// Set stores an encoded image payload in a slot. An empty payload
// clears the slot ("uncleared" from the capture widget's perspective).
func (s *Signatures) Set(slot, payload string) error {
	switch slot {
	case SlotCustomer:
		s.customer = payload
	case SlotEngineer:
		s.engineer = payload
	default:
		return fmt.Errorf("unknown signature slot %q", slot)
	}
	return nil
}

// Clear empties a slot.
func (s *Signatures) Clear(slot string) error {
	return s.Set(slot, "")
}

// Get returns the payload held in a slot, empty if unsigned.
func (s *Signatures) Get(slot string) string {
	switch slot {
	case SlotCustomer:
		return s.customer
	case SlotEngineer:
		return s.engineer
	}
	return ""
}

// ExportReady reports whether both slots are signed.
func (s *Signatures) ExportReady() bool {
	return s.customer != "" && s.engineer != ""
}

// Status summarizes slot population for the UI.
func (s *Signatures) Status() SignatureStatus {
	return SignatureStatus{
		Customer:    s.customer != "",
		Engineer:    s.engineer != "",
		ExportReady: s.ExportReady(),
	}
}
