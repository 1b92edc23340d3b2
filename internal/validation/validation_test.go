package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "john@famify-demo.com", false},
		{"valid with plus", "john+tag@example.org", false},
		{"empty", "", true},
		{"missing at", "john.example.com", true},
		{"missing domain", "john@", true},
		{"whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("Demo123!"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected error for short password")
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestValidateFamilyName(t *testing.T) {
	if err := ValidateFamilyName("The Johnsons"); err != nil {
		t.Errorf("expected valid family name, got %v", err)
	}
	if err := ValidateFamilyName(""); err == nil {
		t.Error("expected error for empty family name")
	}
	if err := ValidateFamilyName("   "); err == nil {
		t.Error("expected error for whitespace-only family name")
	}
}

func TestValidateInviteCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{"valid code", "A7K2M9QX", false},
		{"lowercase rejected", "a7k2m9qx", true},
		{"too short", "A7K2", true},
		{"too long", "A7K2M9QXT", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInviteCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInviteCode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}
