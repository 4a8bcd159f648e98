package service

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		mention  string
		hasValue bool
		value    float64
	}{
		{"bare command", "/inc", "", false, 0},
		{"mention only", "/inc @alice", "alice", false, 0},
		{"value only", "/inc 5", "", true, 5},
		{"mention and value", "/inc @alice 2", "alice", true, 2},
		{"float value", "/set 2.5", "", true, 2.5},
		{"leading dot float", "/set .5", "", true, 0.5},
		{"negative value", "/dec @bob -3", "bob", true, -3},
		{"explicit plus", "/inc +1.5", "", true, 1.5},
		{"first mention wins", "/inc @alice @bob", "alice", false, 0},
		{"first number wins", "/set 1 2", "", true, 1},
		{"digits in mention", "/inc @user2", "user2", true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ParseCommand(tt.text)
			if cmd.Mention != tt.mention {
				t.Errorf("mention: got %q, want %q", cmd.Mention, tt.mention)
			}
			if cmd.HasValue != tt.hasValue {
				t.Errorf("hasValue: got %v, want %v", cmd.HasValue, tt.hasValue)
			}
			if cmd.HasValue && cmd.Value != tt.value {
				t.Errorf("value: got %v, want %v", cmd.Value, tt.value)
			}
		})
	}
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
		ok    bool
	}{
		{"simple title", "/title My Board", "My Board", true},
		{"multi-word title", "/title Beer Pong 2024", "Beer Pong 2024", true},
		{"no argument", "/title", "", false},
		{"trailing space only", "/title ", "", false},
		{"other command token", "/rename New Name", "New Name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := ParseTitle(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if title != tt.title {
				t.Errorf("title: got %q, want %q", title, tt.title)
			}
		})
	}
}
