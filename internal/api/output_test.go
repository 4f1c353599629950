package api

import (
	"bytes"
	"strings"
	"testing"
)

func TestOutputTo(t *testing.T) {
	data := map[string]any{"total": 3, "succeeded": 2}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
			t.Fatalf("OutputTo() error = %v", err)
		}
		if !strings.Contains(buf.String(), "total: 3") {
			t.Errorf("yaml output = %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
			t.Fatalf("OutputTo() error = %v", err)
		}
		if !strings.Contains(buf.String(), `"total": 3`) {
			t.Errorf("json output = %q", buf.String())
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormat("toml"), data); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if globalOutputFormat != OutputFormatJSON {
		t.Errorf("format = %q, want json", globalOutputFormat)
	}

	SetOutputFormat("bogus")
	if globalOutputFormat != OutputFormatYAML {
		t.Errorf("format = %q, want yaml fallback", globalOutputFormat)
	}
}
