package output

import (
	"encoding/json"
	"strings"
	"testing"

	"thermo-calc/internal/errors"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"TEXT", FormatText},
		{" json ", FormatJSON},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	if _, err := ParseFormat("xml"); !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected not-supported error for xml, got %v", err)
	}
}

func TestTableRendersAlignedText(t *testing.T) {
	table := NewTable("Air Properties", 3)
	table.Value("Temperature", 300, "K")
	table.Value("Specific heat", 1004.79345, "J/(kg*K)")

	var buf strings.Builder
	if err := table.Render(&buf, FormatText); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Air Properties") {
		t.Errorf("missing title in output:\n%s", out)
	}
	if !strings.Contains(out, "Temperature    300 K") {
		t.Errorf("expected aligned temperature row in output:\n%s", out)
	}
	if !strings.Contains(out, "1004.793 J/(kg*K)") {
		t.Errorf("expected value rounded to 3 decimals in output:\n%s", out)
	}
}

func TestTableRoundingTrimsTrailingZeros(t *testing.T) {
	table := NewTable("", 2)
	if got := table.round(107.5); got != "107.5" {
		t.Errorf("round(107.5) = %q, want 107.5", got)
	}
	if got := table.round(107.525); got != "107.53" {
		t.Errorf("round(107.525) = %q, want 107.53", got)
	}
}

func TestTableRendersJSON(t *testing.T) {
	table := NewTable("State", 3)
	table.Value("Temperature 1", 293.15, "K")
	table.Text("Process", "isobaric")

	var buf strings.Builder
	if err := table.Render(&buf, FormatJSON); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if decoded["temperature_1"] != 293.15 {
		t.Errorf("temperature_1 = %v, want 293.15", decoded["temperature_1"])
	}
	if decoded["process"] != "isobaric" {
		t.Errorf("process = %v, want isobaric", decoded["process"])
	}

	// Insertion order is preserved in the rendered object.
	idxTemp := strings.Index(buf.String(), "temperature_1")
	idxProc := strings.Index(buf.String(), "process")
	if idxTemp < 0 || idxProc < 0 || idxTemp > idxProc {
		t.Errorf("expected temperature_1 before process:\n%s", buf.String())
	}
}

func TestFieldKey(t *testing.T) {
	cases := map[string]string{
		"Temperature 1":    "temperature_1",
		"Heat flux":        "heat_flux",
		"Mass flow (kg/s)": "mass_flow_kg_s",
	}
	for in, want := range cases {
		if got := fieldKey(in); got != want {
			t.Errorf("fieldKey(%q) = %q, want %q", in, got, want)
		}
	}
}
