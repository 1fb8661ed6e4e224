// Package leads models the test-drive and contact-dealer requests captured by
// the storefront forms.
package leads

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Lead kinds.
const (
	KindTestDrive = "test_drive"
	KindContact   = "contact"
)

// Validation bounds for the name field.
const (
	MinNameLength = 2
	MaxNameLength = 50
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9\s\-\+\(\)]{10,}$`)
)

// Lead is a single captured request. Date and Time are only set for
// test-drive bookings; Message only for contact requests.
type Lead struct {
	ID        int64     `json:"id,omitempty"`
	Kind      string    `json:"kind"`
	VehicleID int       `json:"vehicle_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Validate checks the lead's fields and returns the first problem found.
func (l *Lead) Validate() error {
	if l.Kind != KindTestDrive && l.Kind != KindContact {
		return fmt.Errorf("unknown lead kind %q", l.Kind)
	}
	if l.VehicleID <= 0 {
		return fmt.Errorf("a vehicle must be selected")
	}

	name := strings.TrimSpace(l.Name)
	if len(name) < MinNameLength || len(name) > MaxNameLength {
		return fmt.Errorf("name must be between %d and %d characters", MinNameLength, MaxNameLength)
	}
	if !emailPattern.MatchString(l.Email) {
		return fmt.Errorf("invalid email address")
	}
	if !phonePattern.MatchString(l.Phone) {
		return fmt.Errorf("invalid phone number")
	}

	switch l.Kind {
	case KindTestDrive:
		if l.Date == "" || l.Time == "" {
			return fmt.Errorf("a preferred date and time are required")
		}
	case KindContact:
		if strings.TrimSpace(l.Message) == "" {
			return fmt.Errorf("a message is required")
		}
	}
	return nil
}
