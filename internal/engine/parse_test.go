package engine

import "testing"

func TestParseClassKey(t *testing.T) {
	tests := []struct {
		key       string
		path      string
		intensity int
		wantErr   bool
	}{
		{"1-epic-consequence", "1", 4, false},
		{"2-beginner-none", "2", 2, false},
		{"3-epic-none", "3", 4, false},
		{"1-4-a", "1", 4, false},
		{"2-2", "2", 2, false},
		{"3-banana", "3", 2, false},
		{"solo", "", 0, true},
		{"", "", 0, true},
	}

	for _, tt := range tests {
		path, intensity, err := parseClassKey(tt.key)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseClassKey(%q): expected error, got %q/%d", tt.key, path, intensity)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClassKey(%q) failed: %v", tt.key, err)
			continue
		}
		if path != tt.path || intensity != tt.intensity {
			t.Errorf("parseClassKey(%q) = %q/%d, want %q/%d", tt.key, path, intensity, tt.path, tt.intensity)
		}
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"Meditate (20 min)", 20},
		{"Stretch (15min)", 15},
		{"Walk outside", 30},
		{"Read (abc min)", 30},
	}

	for _, tt := range tests {
		if got := parseDuration(tt.text); got != tt.want {
			t.Errorf("parseDuration(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTaskName(t *testing.T) {
	if got := taskName("Meditate (20 min)"); got != "Meditate" {
		t.Errorf("expected Meditate, got %q", got)
	}
	if got := taskName("Walk outside"); got != "Walk outside" {
		t.Errorf("expected unchanged name, got %q", got)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"knowledge", "learning"},
		{"physical", "fitness"},
		{"mindfulness", "mindfulness"},
		{"whatever", "general"},
		{"", "general"},
	}

	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
