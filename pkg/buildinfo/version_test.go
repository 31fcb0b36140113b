package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	info := Get()
	if info.String() != "v1.2.3 (abc123, 2026-01-02)" {
		t.Errorf("String() = %q", info.String())
	}
	if tmpl := Template(); !strings.Contains(tmpl, "v1.2.3") || !strings.HasPrefix(tmpl, "{{.Name}}") {
		t.Errorf("Template() = %q", tmpl)
	}
}
