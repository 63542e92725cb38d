package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetEnabled(false)

	Log("pressed %s", "D#")
	if !strings.Contains(buf.String(), "pressed D#") {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), prefix) {
		t.Errorf("expected prefix %q in %q", prefix, buf.String())
	}
}

func TestLogSilentWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetEnabled(false)

	Log("should not appear")
	LogIf(true, "nor this")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestLogIf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetEnabled(false)

	LogIf(false, "skipped")
	LogIf(true, "kept")
	out := buf.String()
	if strings.Contains(out, "skipped") || !strings.Contains(out, "kept") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLogTimingAndEnterExit(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetEnabled(false)

	LogTiming("content load", 3*time.Millisecond)
	done := LogEnterExit("fit")
	done()

	out := buf.String()
	for _, want := range []string{"content load took 3ms", "-> fit", "<- fit ("} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}

	SetEnabled(false)
	buf.Reset()
	LogEnterExit("quiet")()
	if buf.Len() != 0 {
		t.Errorf("expected no output while disabled, got %q", buf.String())
	}
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := EnableFile(path); err != nil {
		t.Fatalf("EnableFile: %v", err)
	}
	Log("to file")
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Fatalf("expected log line in file, got %q", data)
	}
	if Enabled() {
		t.Error("expected logging disabled after Close")
	}
}
