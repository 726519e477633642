package tui

import (
	"strings"
	"testing"
)

func TestCompute_RendersPlot(t *testing.T) {
	m := New()
	m.compute()

	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if m.output == "" {
		t.Error("expected plot output")
	}
	if !strings.Contains(m.output, "maximum:") {
		t.Error("expected annotated trajectory plot")
	}
}

func TestCompute_EnergyPlot(t *testing.T) {
	m := New()
	m.plotKind = 3

	m.compute()
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if !strings.Contains(m.output, "mechanical energy") {
		t.Error("expected energy plot output")
	}
}

func TestCompute_MalformedNumberAborts(t *testing.T) {
	m := New()
	m.inputs[0].SetValue("not-a-number")

	m.compute()
	if m.errMsg == "" {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(m.errMsg, "not a number") {
		t.Errorf("unexpected error message: %s", m.errMsg)
	}
	if m.output != "" {
		t.Error("expected no output after aborted recompute")
	}
}

func TestCompute_RejectedParameterSurfaces(t *testing.T) {
	m := New()
	m.inputs[0].SetValue("0") // zero force constant

	m.compute()
	if m.errMsg == "" {
		t.Fatal("expected invalid parameter error")
	}
	if !strings.Contains(m.errMsg, "force constant") {
		t.Errorf("unexpected error message: %s", m.errMsg)
	}
}

func TestSetFocus_Cycles(t *testing.T) {
	m := New()
	m.setFocus(3)

	if m.focus != 3 {
		t.Errorf("expected focus 3, got %d", m.focus)
	}
	if !m.inputs[3].Focused() {
		t.Error("expected input 3 focused")
	}
	if m.inputs[0].Focused() {
		t.Error("expected input 0 blurred")
	}
}

func TestView_ListsAllFields(t *testing.T) {
	m := New()
	view := m.View()

	for _, f := range fields {
		if !strings.Contains(view, f.label) {
			t.Errorf("view missing field %q", f.label)
		}
	}
}
