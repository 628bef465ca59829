package toolchain

import "testing"

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		out  string
		want string
	}{
		{"cargo 1.78.0 (54d8815d0 2024-03-26)", "1.78.0"},
		{"cargo 1.70.0\n", "1.70.0"},
		{"cargo v1.65.1", "1.65.1"},
	}

	for _, tt := range tests {
		v, err := ParseVersionOutput(tt.out)
		if err != nil {
			t.Errorf("ParseVersionOutput(%q): %v", tt.out, err)
			continue
		}
		if v.String() != tt.want {
			t.Errorf("ParseVersionOutput(%q) = %s, want %s", tt.out, v, tt.want)
		}
	}
}

func TestParseVersionOutputMalformed(t *testing.T) {
	for _, out := range []string{"", "cargo", "cargo not-a-version"} {
		if _, err := ParseVersionOutput(out); err == nil {
			t.Errorf("ParseVersionOutput(%q): expected error, got nil", out)
		}
	}
}

func TestMeetsMinimum(t *testing.T) {
	v, err := ParseVersionOutput("cargo 1.78.0")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		minimum string
		want    bool
	}{
		{"", true},
		{"1.70.0", true},
		{"1.78.0", true},
		{"1.79.0", false},
		{"v1.60.0", true},
	}

	for _, tt := range tests {
		got, err := MeetsMinimum(v, tt.minimum)
		if err != nil {
			t.Errorf("MeetsMinimum(%q): %v", tt.minimum, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MeetsMinimum(1.78.0, %q) = %v, want %v", tt.minimum, got, tt.want)
		}
	}
}

func TestMeetsMinimumMalformed(t *testing.T) {
	v, err := ParseVersionOutput("cargo 1.78.0")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := MeetsMinimum(v, "not-a-version"); err == nil {
		t.Error("expected error for malformed minimum, got nil")
	}
}
