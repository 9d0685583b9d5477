package model

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		minimum  string
		expected bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleUser, true},
		// Unknown roles rank below any known minimum.
		{"unknown", RoleUser, false},
		{"", RoleUser, false},
	}

	for _, tt := range tests {
		got := RoleAtLeast(tt.role, tt.minimum)
		if got != tt.expected {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.minimum, got, tt.expected)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"", true},
		{"not-an-email", true},
		{"@missing-local.si", true},
		{"ana@", true},
		{"ana@example.com", false},
		{"ana.novak+test@glasba.si", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestMusicianDisplayName(t *testing.T) {
	tests := []struct {
		musician Musician
		expected string
	}{
		{Musician{FirstName: "Ann", LastName: "Lee"}, "Ann Lee"},
		{Musician{FirstName: "Ann", MiddleName: "Maria", LastName: "Lee"}, "Ann Maria Lee"},
		{Musician{FirstName: "Solo"}, "Solo"},
		{Musician{}, ""},
	}

	for _, tt := range tests {
		if got := tt.musician.DisplayName(); got != tt.expected {
			t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
		}
	}
}
