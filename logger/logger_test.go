package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDefaultDiscards(t *testing.T) {
	// Must not panic before Init
	System("cord").Info("attached")
}

func TestInitTextFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "")
	var buf bytes.Buffer
	Init(&buf)

	System("cord").WithField("anchor", 4).Debug("attached")
	out := buf.String()
	if !strings.Contains(out, "system=cord") || !strings.Contains(out, "anchor=4") {
		t.Errorf("unexpected output %q", out)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Log.GetLevel())
	}
}

func TestInitJSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "bogus")
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	Init(&buf)

	System("power").Info("battery full")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if line["system"] != "power" || line["msg"] != "battery full" {
		t.Errorf("line = %v", line)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("bad level should fall back to info, got %v", Log.GetLevel())
	}
}
