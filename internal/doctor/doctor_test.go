package doctor

import (
	"testing"
)

// stubCheck returns a fixed result, for exercising the runner.
type stubCheck struct {
	name   string
	status Severity
}

func (c *stubCheck) Name() string     { return c.name }
func (c *stubCheck) Category() string { return "stub" }
func (c *stubCheck) Run() *CheckResult {
	return &CheckResult{Name: c.name, Category: "stub", Status: c.status}
}

func TestRunner_AggregatesResults(t *testing.T) {
	r := NewRunner()
	r.AddCheck(&stubCheck{name: "a", status: SeverityPass})
	r.AddCheck(&stubCheck{name: "b", status: SeverityWarning})
	r.AddCheck(&stubCheck{name: "c", status: SeverityError})
	r.AddCheck(&stubCheck{name: "d", status: SeverityInfo})

	report := r.Run()

	if len(report.Results) != 4 {
		t.Fatalf("len(Results) = %d, want 4", len(report.Results))
	}
	if report.Results[0].Name != "a" || report.Results[3].Name != "d" {
		t.Error("results should preserve registration order")
	}

	want := Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() should be true")
	}
	if !report.HasWarnings() {
		t.Error("HasWarnings() should be true")
	}
}

func TestRunner_Empty(t *testing.T) {
	report := NewRunner().Run()

	if len(report.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(report.Results))
	}
	if report.HasErrors() || report.HasWarnings() {
		t.Error("empty report should have no errors or warnings")
	}
	if report.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}
