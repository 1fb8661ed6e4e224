package leads

import (
	"strings"
	"testing"
)

func validTestDrive() Lead {
	return Lead{
		Kind:      KindTestDrive,
		VehicleID: 1,
		Name:      "Jane Roe",
		Email:     "jane@example.com",
		Phone:     "0100 123 4567",
		Date:      "2026-09-01",
		Time:      "14:00",
	}
}

func TestValidateAcceptsGoodLeads(t *testing.T) {
	td := validTestDrive()
	if err := td.Validate(); err != nil {
		t.Fatalf("valid test drive rejected: %v", err)
	}

	contact := Lead{
		Kind:      KindContact,
		VehicleID: 2,
		Name:      "John Doe",
		Email:     "john@example.com",
		Phone:     "+20 (100) 765-4321",
		Message:   "Is this still available?",
	}
	if err := contact.Validate(); err != nil {
		t.Fatalf("valid contact rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Lead)
	}{
		{"unknown kind", func(l *Lead) { l.Kind = "walk_in" }},
		{"missing vehicle", func(l *Lead) { l.VehicleID = 0 }},
		{"name too short", func(l *Lead) { l.Name = "J" }},
		{"name too long", func(l *Lead) { l.Name = strings.Repeat("x", 51) }},
		{"bad email", func(l *Lead) { l.Email = "not-an-email" }},
		{"email with spaces", func(l *Lead) { l.Email = "a b@example.com" }},
		{"phone too short", func(l *Lead) { l.Phone = "12345" }},
		{"phone with letters", func(l *Lead) { l.Phone = "0100 CALL NOW" }},
		{"missing date", func(l *Lead) { l.Date = "" }},
		{"missing time", func(l *Lead) { l.Time = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validTestDrive()
			tt.mutate(&l)
			if err := l.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestValidateContactRequiresMessage(t *testing.T) {
	l := validTestDrive()
	l.Kind = KindContact
	l.Message = "   "
	if err := l.Validate(); err == nil {
		t.Fatal("contact without a message should be rejected")
	}
}
