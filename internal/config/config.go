package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Gating policies for the finalize step. Exactly one is active per
// deployment; both product variants exist in the field.
const (
	PolicyFeedback = "feedback" // feedback rating required when status is Closed
	PolicyRemarks  = "remarks"  // observations required regardless of status
)

// Org identifies the service organization on every rendered report.
type Org struct {
	Name    string `yaml:"name"`
	Short   string `yaml:"short"`  // used in filenames, e.g. NSPL_Report_<ref>.pdf
	Prefix  string `yaml:"prefix"` // report reference prefix, e.g. NSPL-2025-4821
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
}

// SMTP configures the optional direct-send hand-off. When Host is empty
// the email action only builds a mailto: link.
type SMTP struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// Config is the deployment profile for one installation.
type Config struct {
	Org               Org      `yaml:"org"`
	GatingPolicy      string   `yaml:"gating_policy"`
	RequireSignatures bool     `yaml:"require_signatures"`
	SMTP              SMTP     `yaml:"smtp"`
	Ratings           []string `yaml:"ratings"`       // advisory, never enforced
	FaultPresets      []string `yaml:"fault_presets"` // quick-pick fault descriptions
}

// Default returns the shipped NSPL profile: feedback-gated finalize,
// signatures required before export.
func Default() Config {
	return Config{
		Org: Org{
			Name:    "Neptune Systems Pvt. Ltd.",
			Short:   "NSPL",
			Prefix:  "NSPL",
			Address: "Plot No. 9, Sector-156, Noida, Uttar Pradesh-201301",
			Email:   "customercare@neptuneindia.com",
			Website: "www.neptuneindia.com",
		},
		GatingPolicy:      PolicyFeedback,
		RequireSignatures: true,
		SMTP:              SMTP{Port: 587},
		Ratings:           commonRatings(),
		FaultPresets: []string{
			"Breaker tripping on load",
			"HMI display blank",
			"PLC in fault state",
			"Meter reading mismatch",
			"Panel overheating",
		},
	}
}

// commonRatings is the advisory catalog of electrical rating values
// offered as suggestions on the hardware register. Any free text is
// still accepted.
func commonRatings() []string {
	return []string{
		"2A", "4A", "6A", "10A", "16A", "20A", "25A", "32A", "40A", "63A",
		"80A", "100A", "125A", "160A", "200A", "250A", "400A", "630A",
		"800A", "1000A", "1250A", "1600A", "2000A", "2500A", "3200A", "4000A",
		"230V AC", "415V AC", "110V AC", "24V DC", "48V DC", "110V DC",
		"50 Hz", "60 Hz",
		"10kA", "15kA", "25kA", "35kA", "50kA",
	}
}

// Load reads a YAML profile over the defaults. An empty path returns the
// defaults untouched. Environment variables override the file:
// FSR_ORG_NAME, FSR_ORG_EMAIL, FSR_GATING_POLICY.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if v := os.Getenv("FSR_ORG_NAME"); v != "" {
		cfg.Org.Name = v
	}
	if v := os.Getenv("FSR_ORG_EMAIL"); v != "" {
		cfg.Org.Email = v
	}
	if v := os.Getenv("FSR_GATING_POLICY"); v != "" {
		cfg.GatingPolicy = v
	}

	if cfg.GatingPolicy != PolicyFeedback && cfg.GatingPolicy != PolicyRemarks {
		return cfg, fmt.Errorf("unknown gating_policy %q", cfg.GatingPolicy)
	}
	if cfg.Org.Prefix == "" {
		cfg.Org.Prefix = cfg.Org.Short
	}
	if cfg.SMTP.Host != "" && cfg.SMTP.Port <= 0 {
		cfg.SMTP.Port = 587
	}
	return cfg, nil
}
