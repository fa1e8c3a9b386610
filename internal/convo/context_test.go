package convo

import "testing"

func TestPendingEmptyByDefault(t *testing.T) {
	c := NewContext()

	sender, subject, ok := c.Pending()
	if ok {
		t.Fatalf("expected no pending mail, got sender=%q subject=%q", sender, subject)
	}
	if c.Mode() != ModeIdle {
		t.Fatalf("expected idle mode, got %s", c.Mode())
	}
}

func TestSetPendingLastWins(t *testing.T) {
	c := NewContext()

	c.SetPending("first@example.com", "Primero")
	c.SetPending("second@example.com", "Segundo")

	sender, subject, ok := c.Pending()
	if !ok {
		t.Fatal("expected pending mail")
	}
	if sender != "second@example.com" {
		t.Errorf("sender: got %q, want second@example.com", sender)
	}
	if subject != "Segundo" {
		t.Errorf("subject: got %q, want Segundo", subject)
	}
}

func TestConsumeModeResetsToIdle(t *testing.T) {
	c := NewContext()

	for _, m := range []Mode{ModeAwaitingReplyDraft, ModeAwaitingTicketConfirmation, ModeIdle} {
		c.SetMode(m)

		if got := c.ConsumeMode(); got != m {
			t.Errorf("ConsumeMode: got %s, want %s", got, m)
		}
		if c.Mode() != ModeIdle {
			t.Errorf("after consuming %s: mode is %s, want idle", m, c.Mode())
		}
	}
}

func TestPendingSurvivesModeChanges(t *testing.T) {
	c := NewContext()
	c.SetPending("jane@x.com", "Impresora")

	c.SetMode(ModeAwaitingReplyDraft)
	c.ConsumeMode()

	sender, _, ok := c.Pending()
	if !ok || sender != "jane@x.com" {
		t.Fatalf("pending sender lost across mode transitions: %q ok=%v", sender, ok)
	}
}
