package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(10 * time.Millisecond)
	prog.done("compared 5 algorithms")

	if !strings.Contains(buf.String(), "compared 5 algorithms") {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestSearchLogger(t *testing.T) {
	var buf bytes.Buffer
	hooks := newSearchLogger(newLogger(&buf, log.InfoLevel))

	hooks.OnSearchStart("Dijkstra", 10, 10, 3)
	hooks.OnStep("Dijkstra", 1, 2, 1)
	if buf.Len() != 0 {
		t.Errorf("start and step should log at debug only, got %q", buf.String())
	}

	hooks.OnSearchComplete("Dijkstra", true, 2.828, 7, time.Millisecond)
	out := buf.String()
	for _, want := range []string{"path found", "Dijkstra", "2.828", "search"} {
		if !strings.Contains(out, want) {
			t.Errorf("completion log lacks %q: %q", want, out)
		}
	}

	buf.Reset()
	hooks.OnSearchComplete("Dijkstra", false, 0, 4, time.Millisecond)
	if !strings.Contains(buf.String(), "no path") {
		t.Errorf("unsolved log = %q", buf.String())
	}
}

func TestHTTPLogger(t *testing.T) {
	var buf bytes.Buffer
	hooks := newHTTPLogger(newLogger(&buf, log.InfoLevel))
	hooks.OnRequest(context.Background(), "GET", "/healthz")
	if buf.Len() != 0 {
		t.Errorf("request should log at debug only, got %q", buf.String())
	}
	hooks.OnResponse(context.Background(), "GET", "/healthz", 200, time.Millisecond)
	if !strings.Contains(buf.String(), "GET /healthz") || !strings.Contains(buf.String(), "200") {
		t.Errorf("response log = %q", buf.String())
	}
}
