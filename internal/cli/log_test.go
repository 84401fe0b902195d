package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("converted") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("parsed") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("parsed") }, true},
		{"info at warn level", log.WarnLevel, func(l *log.Logger) { l.Info("converted") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("loggerFromContext should fall back to the default logger")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if got := loggerFromContext(ctx); got != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
}

func TestVerboseLogging(t *testing.T) {
	tc := newTestCLI(t)
	var logs bytes.Buffer
	tc.Logger = newLogger(&logs, LogInfo)
	in := tc.write(t, "net.gml", sampleGML)

	if err := tc.execute("convert", in); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(logs.String(), "converting") {
		t.Error("debug line logged at info level")
	}
	if !strings.Contains(logs.String(), "converted graph") {
		t.Errorf("info line missing from %q", logs.String())
	}

	logs.Reset()
	tc.SetLogLevel(LogDebug)
	if err := tc.execute("convert", in); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "converting") {
		t.Errorf("debug line missing from %q", logs.String())
	}
}
