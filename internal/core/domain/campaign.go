package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMetrics is returned (wrapped in a ValidationError) when a
// metrics record cannot be evaluated.
var ErrInvalidMetrics = errors.New("invalid campaign metrics")

// Platform identifies the ad network a campaign runs on.
type Platform string

const (
	PlatformGoogle    Platform = "google"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTikTok    Platform = "tiktok"
	PlatformMicrosoft Platform = "microsoft"
)

// Valid reports whether p is a known platform.
func (p Platform) Valid() bool {
	switch p {
	case PlatformGoogle, PlatformFacebook, PlatformLinkedIn, PlatformTikTok, PlatformMicrosoft:
		return true
	}
	return false
}

// Status is the run state reported by the ad platform.
type Status string

const (
	StatusEnabled Status = "ENABLED"
	StatusPaused  Status = "PAUSED"
	StatusRemoved Status = "REMOVED"
)

// Valid reports whether s is a known campaign status.
func (s Status) Valid() bool {
	switch s {
	case StatusEnabled, StatusPaused, StatusRemoved:
		return true
	}
	return false
}

// CampaignMetrics is a normalized snapshot of one campaign for a single
// evaluation period. Budget and Spend are whole currency units; callers
// holding platform micro-units convert them with MicrosToUnits first.
type CampaignMetrics struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Platform    Platform `json:"platform"`
	Budget      float64  `json:"budget"` // daily budget ceiling
	Spend       float64  `json:"spend"`  // cumulative spend for the period
	Conversions int64    `json:"conversions"`
	Status      Status   `json:"status"`
}

// ValidationError describes the first field of a CampaignMetrics record
// that failed validation. It unwraps to ErrInvalidMetrics.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidMetrics, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidMetrics }

// Validate checks the record before evaluation. Any failure aborts the
// evaluation of this campaign only.
func (m CampaignMetrics) Validate() error {
	if m.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if err := validAmount("budget", m.Budget); err != nil {
		return err
	}
	if err := validAmount("spend", m.Spend); err != nil {
		return err
	}
	if m.Conversions < 0 {
		return &ValidationError{Field: "conversions", Reason: "must not be negative"}
	}
	if !m.Platform.Valid() {
		return &ValidationError{Field: "platform", Reason: fmt.Sprintf("%q is not supported", m.Platform)}
	}
	if !m.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("%q is not supported", m.Status)}
	}
	return nil
}

func validAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if v < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

// MicrosToUnits converts an ad-platform micro amount (1/1,000,000 of the
// currency unit) into whole currency units. The sign is kept, so a negative
// input still fails Validate after conversion.
func MicrosToUnits(micros float64) float64 {
	return micros / 1_000_000
}
