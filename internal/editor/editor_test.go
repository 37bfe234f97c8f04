package editor_test

import (
	"regexp"
	"strings"
	"testing"

	"fsr/internal/config"
	"fsr/internal/editor"
)

func newEditor(t *testing.T, policy string) *editor.Editor {
	t.Helper()
	cfg := config.Default()
	cfg.GatingPolicy = policy
	return editor.New(cfg)
}

func TestReferenceFormat(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	ref := ed.Report().SlNo

	pattern := regexp.MustCompile(`^NSPL-\d{4}-\d{4}$`)
	if !pattern.MatchString(ref) {
		t.Fatalf("reference %q does not match PREFIX-YYYY-NNNN", ref)
	}
}

func TestReferenceStableAcrossMutations(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	ref := ed.Report().SlNo

	ed.UpdateField("customer_name", "Acme Corp")
	ed.UpdateField("location", "Plant 4")
	ed.AddHardwareItem()
	ed.AddPhoto("data:image/jpeg;base64,AAAA")
	if err := ed.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	ed.Edit()
	ed.UpdateField("observations", "Replaced relay")

	if got := ed.Report().SlNo; got != ref {
		t.Fatalf("reference changed from %q to %q", ref, got)
	}
}

func TestReferenceImmutableViaUpdateField(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	if err := ed.UpdateField("sl_no", "NSPL-1999-0001"); err == nil {
		t.Fatal("expected error writing sl_no")
	}
}

func TestNewReportDefaults(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	r := ed.Report()

	if r.Product != "Main LT Panel" {
		t.Errorf("product default = %q", r.Product)
	}
	if r.Environment != "Normal" || r.OperationMode != "Auto" || r.Status != "Open" {
		t.Errorf("unexpected defaults: env=%q mode=%q status=%q", r.Environment, r.OperationMode, r.Status)
	}
	if r.VoltageLL != "415" || r.VoltageLN != "230" {
		t.Errorf("voltage defaults = %q / %q", r.VoltageLL, r.VoltageLN)
	}
	if r.Date == "" || r.Time == "" {
		t.Error("date/time not stamped at creation")
	}
	if len(r.Hardware) != 0 || len(r.Photos) != 0 {
		t.Error("expected empty hardware and photo lists")
	}
}

func TestHardwareItemDefaults(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	item, err := ed.AddHardwareItem()
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID == "" {
		t.Error("item id not generated")
	}
	if item.Type != "MCB" || item.Quantity != 1 || item.Condition != "Good" {
		t.Errorf("unexpected defaults: %+v", item)
	}
}

func TestHardwareOrderPreserved(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)

	var ids []string
	for i := 0; i < 5; i++ {
		item, err := ed.AddHardwareItem()
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		ids = append(ids, item.ID)
	}

	// Remove the middle entry; order of the rest must hold.
	if err := ed.RemoveHardwareItem(ids[2]); err != nil {
		t.Fatalf("remove: %v", err)
	}
	want := []string{ids[0], ids[1], ids[3], ids[4]}

	got := ed.Report().Hardware
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i, item := range got {
		if item.ID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, item.ID, want[i])
		}
	}
}

func TestHardwareIDsUnique(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		item, _ := ed.AddHardwareItem()
		if seen[item.ID] {
			t.Fatalf("duplicate id %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestRemoveUnknownHardwareIsNoop(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	ed.AddHardwareItem()
	ed.AddHardwareItem()

	if err := ed.RemoveHardwareItem("no-such-id"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if got := len(ed.Report().Hardware); got != 2 {
		t.Fatalf("hardware count = %d, want 2", got)
	}
}

func TestUpdateHardwareItem(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	item, _ := ed.AddHardwareItem()

	ed.UpdateHardwareItem(item.ID, "type", "MCCB")
	ed.UpdateHardwareItem(item.ID, "make", "Schneider")
	ed.UpdateHardwareItem(item.ID, "rating", "63A")
	ed.UpdateHardwareItem(item.ID, "quantity", float64(3)) // JSON numbers arrive as float64
	ed.UpdateHardwareItem(item.ID, "condition", "Fair")

	got := ed.Report().Hardware[0]
	if got.Type != "MCCB" || got.Make != "Schneider" || got.Rating != "63A" || got.Quantity != 3 || got.Condition != "Fair" {
		t.Errorf("unexpected item after updates: %+v", got)
	}

	// Unknown id is a no-op, not an error.
	if err := ed.UpdateHardwareItem("ghost", "make", "X"); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	if got := ed.Report().Hardware[0].Make; got != "Schneider" {
		t.Errorf("make changed to %q by unknown-id update", got)
	}
}

func TestUpdateHardwareRejectsBadQuantity(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	item, _ := ed.AddHardwareItem()
	if err := ed.UpdateHardwareItem(item.ID, "quantity", "lots"); err == nil {
		t.Fatal("expected error for non-numeric quantity")
	}
}

func TestPhotoRemovalByIndex(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	for _, p := range []string{"A", "B", "C"} {
		ed.AddPhoto(p)
	}

	ed.RemovePhoto(1)
	if got := ed.Report().Photos; len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("photos after RemovePhoto(1) = %v, want [A C]", got)
	}

	ed.RemovePhoto(5)
	if got := ed.Report().Photos; len(got) != 2 || got[0] != "A" || got[1] != "C" {
		t.Fatalf("photos after out-of-range removal = %v, want [A C]", got)
	}

	ed.RemovePhoto(-1)
	if got := len(ed.Report().Photos); got != 2 {
		t.Fatalf("negative index removed a photo, count = %d", got)
	}
}

func TestFinalizeFeedbackPolicy(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)

	// Open status passes with no feedback set.
	if err := ed.Finalize(); err != nil {
		t.Fatalf("finalize open report: %v", err)
	}
	if ed.State() != editor.StatePreview {
		t.Fatalf("state = %s, want preview", ed.State())
	}

	// Closed with no feedback fails and stays editable.
	ed.Edit()
	ed.UpdateField("status", "Closed")
	err := ed.Finalize()
	if err == nil {
		t.Fatal("expected gate failure for closed report without feedback")
	}
	ve, ok := err.(*editor.ValidationError)
	if !ok {
		t.Fatalf("error type %T, want *ValidationError", err)
	}
	if ve.Kind != editor.KindMissingFeedback || ve.Field != "feedback_rating" {
		t.Errorf("unexpected validation error: %+v", ve)
	}
	if ed.State() != editor.StateEditing {
		t.Fatalf("state = %s after failed gate, want editing", ed.State())
	}

	// Setting feedback unblocks the gate.
	ed.UpdateField("feedback_rating", "Very Good")
	if err := ed.Finalize(); err != nil {
		t.Fatalf("finalize after feedback set: %v", err)
	}
}

func TestFinalizeRemarksPolicy(t *testing.T) {
	ed := newEditor(t, config.PolicyRemarks)

	for _, status := range []string{"Open", "Closed"} {
		ed.Edit()
		ed.UpdateField("status", status)
		ed.UpdateField("observations", "   ")

		err := ed.Finalize()
		if err == nil {
			t.Fatalf("status %s: expected gate failure with blank observations", status)
		}
		ve, ok := err.(*editor.ValidationError)
		if !ok || ve.Kind != editor.KindMissingObservations {
			t.Fatalf("status %s: unexpected error %v", status, err)
		}
	}

	ed.UpdateField("observations", "Replaced faulty MCB")
	if err := ed.Finalize(); err != nil {
		t.Fatalf("finalize with observations: %v", err)
	}
}

func TestMutationLockedInPreview(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	if err := ed.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if _, err := ed.AddHardwareItem(); err != editor.ErrLocked {
		t.Errorf("AddHardwareItem while finalized: %v", err)
	}
	if err := ed.UpdateField("customer_name", "X"); err != editor.ErrLocked {
		t.Errorf("UpdateField while finalized: %v", err)
	}
	if err := ed.AddPhoto("data:..."); err != editor.ErrLocked {
		t.Errorf("AddPhoto while finalized: %v", err)
	}

	ed.Edit()
	if err := ed.UpdateField("customer_name", "X"); err != nil {
		t.Errorf("UpdateField after Edit: %v", err)
	}
}

func TestReportSnapshotDoesNotAlias(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	ed.AddHardwareItem()
	snap := ed.Report()

	snap.Hardware[0].Make = "tampered"
	snap.Photos = append(snap.Photos, "tampered")

	if got := ed.Report().Hardware[0].Make; got == "tampered" {
		t.Error("snapshot aliases editor-owned hardware slice")
	}
	if got := len(ed.Report().Photos); got != 0 {
		t.Errorf("snapshot aliases editor-owned photo slice, count = %d", got)
	}
}

func TestUnknownScalarFieldRejected(t *testing.T) {
	ed := newEditor(t, config.PolicyFeedback)
	err := ed.UpdateField("favourite_colour", "blue")
	if err == nil || !strings.Contains(err.Error(), "unknown") {
		t.Fatalf("expected unknown-field error, got %v", err)
	}
}
