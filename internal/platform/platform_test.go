package platform

import "testing"

func TestFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  Platform
	}{
		{"Windows_NT", Windows},
		{"windows_nt", Windows},
		{"WINDOWS_NT", Windows},
		{"", Posix},
		{"Linux", Posix},
		{"Darwin", Posix},
		{"Windows", Posix},
	}

	for _, tt := range tests {
		if got := FromEnv(tt.value); got != tt.want {
			t.Errorf("FromEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFromEnvDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := FromEnv("Windows_NT"); got != Windows {
			t.Fatalf("call %d: FromEnv(\"Windows_NT\") = %v, want Windows", i, got)
		}
	}
}

func TestResolveReadsEnvironment(t *testing.T) {
	t.Setenv("OS", "Windows_NT")
	if got := Resolve(); got != Windows {
		t.Errorf("Resolve() with OS=Windows_NT = %v, want Windows", got)
	}

	t.Setenv("OS", "")
	if got := Resolve(); got != Posix {
		t.Errorf("Resolve() with empty OS = %v, want Posix", got)
	}
}

func TestPlatformString(t *testing.T) {
	if got := Windows.String(); got != "windows" {
		t.Errorf("Windows.String() = %q", got)
	}
	if got := Posix.String(); got != "posix" {
		t.Errorf("Posix.String() = %q", got)
	}
}
