package matrix

import (
	"strings"
	"testing"
)

func TestDescribe_CanonicalKeys(t *testing.T) {
	tests := []struct {
		key   string
		title string
		icon  string
		class string
	}{
		{"High-High", "Quick Wins", IconTarget, "high-high"},
		{"High-Medium", "Major Projects", IconRocket, "high-medium"},
		{"High-Low", "Challenging", IconMountain, "medium-low"},
		{"Medium-High", "Fill-ins", IconWrench, "medium-high"},
		{"Medium-Medium", "Consider Carefully", IconThinking, "medium-medium"},
		{"Medium-Low", "Questionable", IconWarning, "medium-low"},
		{"Low-High", "Easy Wins", IconBalloon, "medium-high"},
		{"Low-Medium", "Reconsider", IconMagnifier, "medium-medium"},
		{"Low-Low", "Avoid", IconCross, "medium-low"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			key, err := ParseKey(tt.key)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.key, err)
			}

			d := Describe(key)
			if d.Title != tt.title {
				t.Errorf("Title = %q, want %q", d.Title, tt.title)
			}
			if d.Icon != tt.icon {
				t.Errorf("Icon = %q, want %q", d.Icon, tt.icon)
			}
			if d.Class != tt.class {
				t.Errorf("Class = %q, want %q", d.Class, tt.class)
			}
			wantDesc := key.BusinessValue + " Business Value & " + key.Feasibility + " Feasibility"
			if d.Description != wantDesc {
				t.Errorf("Description = %q, want %q", d.Description, wantDesc)
			}
			if Glyph(d.Icon) == "" {
				t.Errorf("Glyph(%q) is empty", d.Icon)
			}
		})
	}
}

func TestDescribe_Fallback(t *testing.T) {
	tests := []Key{
		NewKey("Critical", "High"),
		NewKey("high", "high"),
		NewKey("Medium", "Unknown"),
	}

	for _, key := range tests {
		t.Run(key.String(), func(t *testing.T) {
			d := Describe(key)
			if d.Title != "Other" {
				t.Errorf("Title = %q, want %q", d.Title, "Other")
			}
			if d.Icon != IconClipboard {
				t.Errorf("Icon = %q, want %q", d.Icon, IconClipboard)
			}
			if !strings.Contains(d.Description, key.BusinessValue) || !strings.Contains(d.Description, key.Feasibility) {
				t.Errorf("Description %q does not embed %q and %q", d.Description, key.BusinessValue, key.Feasibility)
			}
		})
	}
}

func TestDescribe_Deterministic(t *testing.T) {
	key := NewKey("Low", "Low")
	if Describe(key) != Describe(key) {
		t.Error("Describe() returned different descriptors for the same key")
	}
}

func TestGlyph_Unknown(t *testing.T) {
	if got := Glyph("nope"); got != "" {
		t.Errorf("Glyph(nope) = %q, want empty", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input   string
		want    Key
		wantErr bool
	}{
		{"High-Low", NewKey("High", "Low"), false},
		{"Foo-Bar", NewKey("Foo", "Bar"), false},
		{"High", Key{}, true},
		{"", Key{}, true},
		{"-Low", Key{}, true},
		{"High-", Key{}, true},
		{"High-Low-Extra", Key{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.input {
				t.Errorf("String() = %q, want %q", got.String(), tt.input)
			}
		})
	}
}
