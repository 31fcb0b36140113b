package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// newTestCLI returns a CLI logging into a buffer, with the config directory
// pointed at an empty temp dir.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	prev := observability.Search()
	t.Cleanup(func() { observability.SetSearchHooks(prev) })

	var logs bytes.Buffer
	return New(&logs, LogInfo), &logs
}

func execute(t *testing.T, c *CLI, args ...string) (string, error) {
	t.Helper()
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	want := []string{"algorithms", "compare", "completion", "config", "run", "serve", "solve"}
	var got []string
	for _, cmd := range root.Commands() {
		got = append(got, cmd.Name())
	}
	for _, name := range want {
		found := false
		for _, g := range got {
			if g == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing subcommand %q in %v", name, got)
		}
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "algorithms")
	if err != nil {
		t.Fatalf("algorithms: %v", err)
	}
	for _, want := range []string{"astar-manhattan", "dijkstra", "bidirectional", "Bidirectional Best-First Search"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShow(t *testing.T) {
	c, _ := newTestCLI(t)
	path := writeFile(t, "config.toml", "algorithm = \"dijkstra\"\nspeed = 5\n")

	out, err := execute(t, c, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{`algorithm = "dijkstra"`, "speed = 5", "width = 50", "[server]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPath(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	want := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "pathfinder", "config.toml")
	if strings.TrimSpace(out) != want {
		t.Errorf("path = %q, want %q", strings.TrimSpace(out), want)
	}
}

func TestConfigLogLevel(t *testing.T) {
	c, _ := newTestCLI(t)
	path := writeFile(t, "config.toml", "log_level = \"warn\"\n")
	if _, err := execute(t, c, "--config", path, "config", "path"); err != nil {
		t.Fatal(err)
	}
	if got := c.Logger.GetLevel(); got != log.WarnLevel {
		t.Errorf("level = %v, want warn", got)
	}

	// An explicit debug level wins over the file.
	c, _ = newTestCLI(t)
	c.SetLogLevel(LogDebug)
	if _, err := execute(t, c, "--config", path, "config", "path"); err != nil {
		t.Fatal(err)
	}
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("level = %v, want debug", got)
	}
}

func TestInvalidConfigFailsCommands(t *testing.T) {
	c, _ := newTestCLI(t)
	path := writeFile(t, "config.toml", "speed = 500\n")
	_, err := execute(t, c, "--config", path, "algorithms")
	if errors.GetCode(err) != errors.ErrCodeInvalidSpeed {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidSpeed)
	}
}

func TestSolveCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	grid := writeFile(t, "corridor.map", "S.T\n")
	out := filepath.Join(t.TempDir(), "frame.txt")

	if _, err := execute(t, c, "solve", grid, "-a", "dijkstra", "-f", "txt", "-o", out); err != nil {
		t.Fatalf("solve: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "S*T\n" {
		t.Errorf("frame = %q, want %q", data, "S*T\n")
	}
}

func TestSolveCommandMultipleFormats(t *testing.T) {
	c, _ := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "maze")

	_, err := execute(t, c, "solve", "--width", "8", "--height", "6", "--maze", "--seed", "3", "-f", "svg, json", "-o", base)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", ext, err)
		}
	}
}

func TestSolveCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"solve", "-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"unknown algorithm", []string{"solve", "-a", "bfs"}, errors.ErrCodeUnknownAlgorithm},
		{"bad dimensions", []string{"solve", "--width", "0"}, errors.ErrCodeInvalidDimensions},
		{"source is target", []string{"solve", "--target", "1,1"}, errors.ErrCodeSourceIsTarget},
		{"bad coordinate", []string{"solve", "--source", "one,two"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			_, err := execute(t, c, tt.args...)
			if errors.GetCode(err) != tt.code {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCompareCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	grid := writeFile(t, "room.map", "S...\n.##.\n...T\n")

	out, err := execute(t, c, "compare", grid)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"Algorithm", "A-Star (Manhattan Distance)", "Dijkstra", "Bidirectional Best-First Search", "yes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompareSourceIsTarget(t *testing.T) {
	c, _ := newTestCLI(t)
	_, err := execute(t, c, "compare", "--target", "1,1")
	if errors.GetCode(err) != errors.ErrCodeSourceIsTarget {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeSourceIsTarget)
	}
}

func TestCompletionCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	out, err := execute(t, c, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "pathfinder") {
		t.Error("bash completion does not mention pathfinder")
	}
	if _, err := execute(t, c, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
