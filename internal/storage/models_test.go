package storage

import "testing"

func TestChatSession_InsertionOrder(t *testing.T) {
	s := NewChatSession()
	s.Upsert(3, "Carol")
	s.Upsert(1, "Alice")
	s.Upsert(2, "Bob")

	entries := s.Entries()
	want := []string{"Carol", "Alice", "Bob"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].DisplayName != name {
			t.Errorf("entry %d: got %q, want %q", i, entries[i].DisplayName, name)
		}
	}

	// Повторный Upsert не меняет порядок
	s.Upsert(1, "Alicia")
	entries = s.Entries()
	if entries[1].DisplayName != "Alicia" {
		t.Errorf("name not refreshed: %q", entries[1].DisplayName)
	}
}

func TestChatSession_FindByMention(t *testing.T) {
	s := NewChatSession()
	s.Upsert(1, "Alice Smith")
	s.Upsert(2, "alice jones")

	if e := s.FindByMention("Alice"); e == nil || e.DisplayName != "Alice Smith" {
		t.Errorf("expected first matching entry, got %+v", e)
	}
	if e := s.FindByMention("alice"); e == nil || e.DisplayName != "alice jones" {
		t.Errorf("match must be case-sensitive, got %+v", e)
	}
	if e := s.FindByMention("bob"); e != nil {
		t.Errorf("expected no match, got %+v", e)
	}
}

func TestChatSession_Reset(t *testing.T) {
	s := NewChatSession()
	s.Upsert(1, "Alice").Score = 5
	s.Title = "Custom"
	s.BoardMessageID = 42

	s.Reset()

	if s.Len() != 0 || s.Title != DefaultTitle || s.BoardMessageID != 0 {
		t.Errorf("session not fully reset: %+v", s)
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry()

	a := r.GetOrCreate(1)
	if again := r.GetOrCreate(1); again != a {
		t.Error("GetOrCreate returned a different session for the same chat")
	}
	if b := r.GetOrCreate(2); b == a {
		t.Error("sessions shared between chats")
	}

	if _, ok := r.Get(3); ok {
		t.Error("Get invented a session")
	}
}
