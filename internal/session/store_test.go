package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/anyafi/anya/internal/core"
)

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(time.Hour)
	if _, ok := s.Get("nobody"); ok {
		t.Fatal("expected absent session")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	s := NewStore(time.Hour)
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Put("u1", core.Session{State: "greeting"})

	if _, ok := s.Get("u1"); !ok {
		t.Fatal("expected live session")
	}

	current = current.Add(2 * time.Hour)
	if _, ok := s.Get("u1"); ok {
		t.Fatal("expected expired session to be absent")
	}
	if got := s.GetState("u1"); got != "" {
		t.Errorf("expected empty state after expiry, got %q", got)
	}
}

func TestStore_HistoryCapAndOrder(t *testing.T) {
	s := NewStore(time.Hour)
	for i := 0; i < maxHistory+5; i++ {
		s.AppendHistory("u1", core.RoleUser, fmt.Sprintf("msg %d", i))
	}

	sess, ok := s.Get("u1")
	if !ok {
		t.Fatal("expected session")
	}
	if len(sess.History) != maxHistory {
		t.Fatalf("expected history capped at %d, got %d", maxHistory, len(sess.History))
	}
	if sess.History[len(sess.History)-1].Content != fmt.Sprintf("msg %d", maxHistory+4) {
		t.Errorf("expected most recent message last, got %q", sess.History[len(sess.History)-1].Content)
	}
}

func TestStore_HistoryLimit(t *testing.T) {
	s := NewStore(time.Hour)
	for i := 0; i < 10; i++ {
		s.AppendHistory("u1", core.RoleUser, fmt.Sprintf("msg %d", i))
	}

	got := s.History("u1", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(got))
	}
	if got[0].Content != "msg 7" || got[2].Content != "msg 9" {
		t.Errorf("unexpected tail: %q .. %q", got[0].Content, got[2].Content)
	}
}

func TestStore_State(t *testing.T) {
	s := NewStore(time.Hour)
	s.SetState("u1", "awaiting_goal_amount")
	if got := s.GetState("u1"); got != "awaiting_goal_amount" {
		t.Errorf("expected state round-trip, got %q", got)
	}
}
