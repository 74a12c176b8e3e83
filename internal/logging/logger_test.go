package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger_Formats(t *testing.T) {
	testCases := []string{"json", "text", "JSON", "TEXT", "", "invalid"}

	for _, format := range testCases {
		t.Run(format, func(t *testing.T) {
			// Should not panic
			logger := NewLogger(format, false)
			if logger == nil {
				t.Error("NewLogger returned nil")
			}
		})
	}
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(&buf, "json", false)

	logger.Info("test_event", "command", "ls", "runs", 5)

	out := buf.String()
	if !strings.Contains(out, `"msg":"test_event"`) {
		t.Errorf("JSON output missing message: %s", out)
	}
	if !strings.Contains(out, `"command":"ls"`) {
		t.Errorf("JSON output missing attribute: %s", out)
	}
}

func TestNewLoggerWithWriter_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLoggerWithWriter(&buf, "text", false)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug logged without verbose: %s", buf.String())
	}

	buf.Reset()
	logger = NewLoggerWithWriter(&buf, "text", true)
	logger.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug not logged with verbose: %s", buf.String())
	}
}
