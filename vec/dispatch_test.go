package vec

import (
	"runtime"
	"testing"
)

func TestParseNoSimd(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true}, // not a bool, but set
	}
	for _, tt := range tests {
		if got := parseNoSimd(tt.val); got != tt.want {
			t.Errorf("parseNoSimd(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentWidth() != 16 {
		t.Errorf("CurrentWidth() = %d, want 16", CurrentWidth())
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %q", CurrentName(), CurrentLevel())
	}

	if NoSimdEnv() {
		if CurrentLevel() != DispatchScalar {
			t.Errorf("%s is set but level is %s", NoSimdEnvVar, CurrentLevel())
		}
		return
	}
	switch runtime.GOARCH {
	case "arm64":
		if !HasNEON() {
			t.Errorf("arm64 host reports level %s, want neon", CurrentLevel())
		}
	case "amd64":
		if CurrentLevel() != DispatchSSE2 {
			t.Errorf("amd64 host reports level %s, want sse2", CurrentLevel())
		}
	default:
		if CurrentLevel() != DispatchScalar {
			t.Errorf("%s host reports level %s, want scalar", runtime.GOARCH, CurrentLevel())
		}
	}
}

func TestDispatchLevelString(t *testing.T) {
	names := map[DispatchLevel]string{
		DispatchScalar:    "scalar",
		DispatchSSE2:      "sse2",
		DispatchNEON:      "neon",
		DispatchLevel(42): "unknown",
	}
	for level, want := range names {
		if got := level.String(); got != want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}
