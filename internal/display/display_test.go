package display

import "testing"

func TestExtractName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"Kvartet A", "Kvartet A"},
		{"  Kvartet A  ", "Kvartet A"},
		{"12: Kvartet A", "Kvartet A"},
		{"7:Ann Lee", "Ann Lee"},
		{"3:  spaced  ", "spaced"},
		// Only the first colon splits; the rest is part of the name.
		{"1: Live: Unplugged", "Live: Unplugged"},
	}

	for _, tt := range tests {
		if got := ExtractName(tt.in); got != tt.expected {
			t.Errorf("ExtractName(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

func TestExtractNameIdempotent(t *testing.T) {
	for _, in := range []string{"12: Kvartet A", "Ann Lee", "  plain  "} {
		once := ExtractName(in)
		if twice := ExtractName(once); twice != once {
			t.Errorf("ExtractName not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		field    string
		expected string
	}{
		{"first_name", "Ime"},
		{"ensemble_name", "Ansambel"},
		{"sales_percentage", "Odstotek prodaje"},
		// Unknown fields: underscores become spaces.
		{"some_new_field", "some new field"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := FieldLabel(tt.field); got != tt.expected {
			t.Errorf("FieldLabel(%q) = %q, want %q", tt.field, got, tt.expected)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", ""},
		{"NULL", ""},
		{"2023", "2023"},
		{"2023-05-17", "17.05.2023"},
		{"17/05/2023", "17.05.2023"},
		{"2023.05.17", "17.05.2023"},
		{"'2023-05-17'", "17.05.2023"},
		// Unparseable input passes through unchanged.
		{"sometime in May", "sometime in May"},
		{"23", "23"},
	}

	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.expected {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
