package board

import (
	"errors"
	"testing"
)

func TestPostAssignsSequentialIDs(t *testing.T) {
	b := NewBoard()

	first := b.Post("Thomas Shelby", "Hello", "first")
	second := b.Post("Thomas Shelby", "Again", "second")

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.Receiver != AdminName {
		t.Errorf("guest post receiver = %q, want %q", first.Receiver, AdminName)
	}
}

func TestReply(t *testing.T) {
	b := NewBoard()
	orig := b.Post("Thomas Shelby", "Billing question", "why so much")

	reply, err := b.Reply(orig.ID, "itemized bill attached")
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Sender != AdminName {
		t.Errorf("reply sender = %q, want %q", reply.Sender, AdminName)
	}
	if reply.Receiver != "Thomas Shelby" {
		t.Errorf("reply receiver = %q, want %q", reply.Receiver, "Thomas Shelby")
	}
	if reply.Subject != "Reply to Billing question" {
		t.Errorf("reply subject = %q", reply.Subject)
	}
	if reply.ID != orig.ID+1 {
		t.Errorf("reply id = %d, want %d", reply.ID, orig.ID+1)
	}
}

func TestReplyUnknownMessage(t *testing.T) {
	b := NewBoard()
	if _, err := b.Reply(99, "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVisibility(t *testing.T) {
	b := NewBoard()
	tom := b.Post("Thomas Shelby", "Hello", "from tom")
	b.Post("Gus Fring", "Hola", "from gus")
	if _, err := b.Reply(tom.ID, "hello tom"); err != nil {
		t.Fatal(err)
	}

	// A guest sees only their own conversation, both directions.
	visible := b.MessagesFor(Identity{Role: RoleGuest, Name: "Thomas Shelby"})
	if len(visible) != 2 {
		t.Fatalf("guest sees %d messages, want 2", len(visible))
	}
	for _, m := range visible {
		if m.Sender != "Thomas Shelby" && m.Receiver != "Thomas Shelby" {
			t.Errorf("leaked message %+v", m)
		}
	}

	// The admin inbox holds everything addressed to the admin, not the
	// replies the admin sent.
	inbox := b.MessagesFor(Identity{Role: RoleAdmin, Name: AdminName})
	if len(inbox) != 2 {
		t.Fatalf("admin sees %d messages, want 2", len(inbox))
	}
	for _, m := range inbox {
		if m.Receiver != AdminName {
			t.Errorf("non-inbox message %+v", m)
		}
	}

	// Anonymous visitors see nothing.
	if got := b.MessagesFor(anonymous); len(got) != 0 {
		t.Errorf("anonymous sees %d messages, want 0", len(got))
	}
}

func TestIDsNeverReused(t *testing.T) {
	b := NewBoard()
	b.Post("Gus Fring", "one", "x")
	b.Post("Gus Fring", "two", "x")

	// The log has no delete operation, so the only way to lose messages
	// is a restart, which resets ids along with the log. Within one board
	// lifetime every append gets a fresh id.
	seen := map[int64]bool{}
	for _, m := range b.MessagesFor(Identity{Role: RoleGuest, Name: "Gus Fring"}) {
		if seen[m.ID] {
			t.Fatalf("id %d issued twice", m.ID)
		}
		seen[m.ID] = true
	}
	next := b.Post("Gus Fring", "three", "x")
	if next.ID != 3 {
		t.Errorf("next id = %d, want 3", next.ID)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := NewSessions("test-secret")

	token, err := s.Issue(Identity{Role: RoleGuest, Name: "Thomas Shelby"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	id := s.Verify(token)
	if id.Role != RoleGuest || id.Name != "Thomas Shelby" {
		t.Errorf("round trip gave %+v", id)
	}
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	s := NewSessions("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if id := s.Verify(token); id.Role != RoleAnonymous {
			t.Errorf("token %q verified as %+v", token, id)
		}
	}

	// A token signed with a different secret is a stranger's token.
	other, err := NewSessions("other-secret").Issue(Identity{Role: RoleAdmin, Name: AdminName})
	if err != nil {
		t.Fatal(err)
	}
	if id := s.Verify(other); id.Role != RoleAnonymous {
		t.Errorf("foreign token verified as %+v", id)
	}
}
