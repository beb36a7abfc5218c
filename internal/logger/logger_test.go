package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"trace", "trace", logrus.TraceLevel},
		{"debug", "debug", logrus.DebugLevel},
		{"unknown falls back to info", "chatty", logrus.InfoLevel},
		{"empty falls back to info", "", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, "text")
			if got := Log.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitJSONFormatter(t *testing.T) {
	Init("info", "JSON")
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("formatter = %T, want *logrus.JSONFormatter", Log.Formatter)
	}
}

func TestOnceDropsRepeats(t *testing.T) {
	ResetOnce()
	defer ResetOnce()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.TraceLevel)
	entry := logrus.NewEntry(l)

	if !Once(entry, logrus.TraceLevel, "tile is missing a tag") {
		t.Fatal("first Once call should log")
	}
	if Once(entry, logrus.TraceLevel, "tile is missing a tag") {
		t.Error("second Once call with the same message should be dropped")
	}
	if !Once(entry, logrus.TraceLevel, "another message") {
		t.Error("a different message should log")
	}

	if n := strings.Count(buf.String(), "tile is missing a tag"); n != 1 {
		t.Errorf("message written %d times, want 1", n)
	}
}
