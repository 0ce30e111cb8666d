package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		exp      Level
		expError string
	}
	specs := []spec{
		{"debug", Debug, ""},
		{" INFO ", Info, ""},
		{"notice", Notice, ""},
		{"Warning", Warning, ""},
		{"error", Error, ""},
		{"loud", Notice, `log: unknown level "loud"`},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError != "" {
			if err == nil || err.Error() != s.expError {
				t.Fatalf("[spec %d] expected error %s; got %v", idx, s.expError, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %s; got %s", idx, s.exp, level)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden message")
	logger.Notice("visible message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Fatalf("expected info message to be filtered out; got %q", out)
	}
	if !strings.Contains(out, "visible message") || !strings.Contains(out, "[test]") {
		t.Fatalf("expected notice message tagged with the module name; got %q", out)
	}

	SetLevel(Debug)
	if !IsEnabled(Debug) {
		t.Fatal("expected debug level to be enabled")
	}
	SetLevel(Error)
	if IsEnabled(Warning) {
		t.Fatal("expected warning level to be disabled")
	}
	SetLevel(Notice)
}
