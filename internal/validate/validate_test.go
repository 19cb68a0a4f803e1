package validate

import "testing"

func TestPassword(t *testing.T) {
	tests := []struct {
		password string
		wantErrs int
	}{
		{"Str0ng!pass", 0},
		{"short1!A", 0}, // exactly 8 with all classes
		{"weak", 4},     // too short, no upper, no digit, no special
		{"alllowercase1!", 1},
		{"ALLUPPERCASE1!", 1},
		{"NoDigits!!", 1},
		{"NoSpecial123", 1},
	}

	for _, tt := range tests {
		if got := Password(tt.password); len(got) != tt.wantErrs {
			t.Errorf("Password(%q) = %d errors %v, want %d", tt.password, len(got), got, tt.wantErrs)
		}
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		username string
		ok       bool
	}{
		{"alice", true},
		{"al", false},
		{"a_very_long_username_over_twenty", false},
		{"bad name", false},
		{"dots.not.allowed", false},
		{"under_score_9", true},
	}

	for _, tt := range tests {
		errs := Username(tt.username)
		if (len(errs) == 0) != tt.ok {
			t.Errorf("Username(%q) errs = %v, want ok=%v", tt.username, errs, tt.ok)
		}
	}
}

func TestFamilyID(t *testing.T) {
	tests := []struct {
		familyID string
		ok       bool
	}{
		{"family_a1b2c3d4", true},
		{"abc", false},
		{"with space", false},
		{"dash-ok_123", true},
	}

	for _, tt := range tests {
		errs := FamilyID(tt.familyID)
		if (len(errs) == 0) != tt.ok {
			t.Errorf("FamilyID(%q) errs = %v, want ok=%v", tt.familyID, errs, tt.ok)
		}
	}
}
