package domain

import "testing"

func TestTicketStatusValid(t *testing.T) {
	for _, status := range []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusClosed} {
		if !status.Valid() {
			t.Fatalf("%q should be valid", status)
		}
	}
	for _, status := range []TicketStatus{"", "resolved", "OPEN", "In Progress"} {
		if status.Valid() {
			t.Fatalf("%q should be invalid", status)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatal("built-in roles should be valid")
	}
	if Role("superadmin").Valid() || Role("").Valid() {
		t.Fatal("unknown roles should be invalid")
	}
}
