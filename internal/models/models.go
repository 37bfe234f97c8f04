package models

// APIResponse is the standard JSON envelope for all API responses.
type APIResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

// Meta contains list metadata.
type Meta struct {
	Total int `json:"total,omitempty"`
}

// Component types loggable in the hardware register. The display strings
// appear verbatim on the rendered report, so they are the enum values.
const (
	TypePLC       = "PLC"
	TypeHMI       = "HMI"
	TypeMFM       = "Multifunction Meter"
	TypeVMR       = "Voltage Monitoring Relay"
	TypeSCADA     = "SCADA System"
	TypeACB       = "Air Circuit Breaker"
	TypeContactor = "Contactor"
	TypeMCCB      = "MCCB"
	TypeMCB       = "MCB"
)

// ComponentTypes lists every recognized hardware category, in the order
// the selection UI presents them.
var ComponentTypes = []string{
	TypePLC, TypeHMI, TypeMFM, TypeVMR, TypeSCADA,
	TypeACB, TypeContactor, TypeMCCB, TypeMCB,
}

var (
	Conditions      = []string{"Good", "Fair", "Critical"}
	Environments    = []string{"Normal", "Humid", "Corrosive", "Dusty"}
	OperationModes  = []string{"Manual", "Auto", "Remote"}
	Statuses        = []string{"Open", "Closed"}
	FeedbackRatings = []string{"Excellence", "Very Good", "Good", "Average", "Below Average"}
)

// HardwareItem is one inventoried component logged during a site visit.
// ID is generated at creation and only ever used for list addressing;
// it never appears on the rendered report.
type HardwareItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Rating    string `json:"rating"`
	Quantity  int    `json:"quantity"`
	Condition string `json:"condition"`
}

// ServiceReport is the aggregate record for one field-service visit.
// All mutation goes through the editor; nothing here enforces anything.
type ServiceReport struct {
	SlNo             string         `json:"sl_no"`
	ComplaintNo      string         `json:"complaint_no"`
	CustomerName     string         `json:"customer_name"`
	ClientName       string         `json:"client_name"`
	ClientMobile     string         `json:"client_mobile"`
	Location         string         `json:"location"`
	PanelID          string         `json:"panel_id"`
	Date             string         `json:"date"`
	Time             string         `json:"time"`
	Product          string         `json:"product"`
	NatureOfFault    string         `json:"nature_of_fault"`
	Hardware         []HardwareItem `json:"hardware"`
	Observations     string         `json:"observations"`
	Environment      string         `json:"environment"`
	VoltageLL        string         `json:"voltage_ll"`
	VoltageLN        string         `json:"voltage_ln"`
	OperationMode    string         `json:"operation_mode"`
	Status           string         `json:"status"`
	EngineerName     string         `json:"engineer_name"`
	TechnicianMobile string         `json:"technician_mobile"`
	CustomerContact  string         `json:"customer_contact"`
	FeedbackRating   string         `json:"feedback_rating"`
	Photos           []string       `json:"photos"`
}

// Clone returns a deep copy of the report. The renderer and export
// adapters work on clones so they can never alias editor-owned state.
func (r ServiceReport) Clone() ServiceReport {
	c := r
	c.Hardware = make([]HardwareItem, len(r.Hardware))
	copy(c.Hardware, r.Hardware)
	c.Photos = make([]string, len(r.Photos))
	copy(c.Photos, r.Photos)
	return c
}
