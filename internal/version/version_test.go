package version

import "testing"

func TestGetVersion_Override(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	if got := GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %q, want %q", got, "v1.2.3")
	}
}

func TestGetVersion_NotEmpty(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion() returned an empty string")
	}
}
