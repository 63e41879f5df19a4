package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugWritesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	log.V(Verbosity).Info("file unavailable", "path", "/proc/uptime")

	out := buf.String()
	if !strings.Contains(out, "procinspect") || !strings.Contains(out, "file unavailable") ||
		!strings.Contains(out, "/proc/uptime") {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestNoDebugDiscards(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Info("should not appear")
	log.V(Verbosity).Info("nor this")
	if buf.Len() != 0 {
		t.Fatalf("discard logger wrote %q", buf.String())
	}
}
