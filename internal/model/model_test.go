package model

import (
	"math"
	"testing"
)

func TestUptimeBreakdownRecomposes(t *testing.T) {
	inputs := []float64{0, 0.99, 59, 60, 3599.5, 86399, 86400, 123456.78,
		31535999, 31536000, 31536000*3 + 86400*364 + 3600*23 + 60*59 + 59, 1e10 + 0.4}
	for _, in := range inputs {
		got := NewUptimeBreakdown(in)
		if want := int64(math.Floor(in)); got.TotalSeconds() != want {
			t.Errorf("NewUptimeBreakdown(%v) = %+v recomposes to %d, want %d", in, got, got.TotalSeconds(), want)
		}
	}
}

func TestUptimeBreakdownFields(t *testing.T) {
	got := NewUptimeBreakdown(123456.78)
	want := UptimeBreakdown{Years: 0, Days: 1, Hours: 10, Minutes: 17, Seconds: 36}
	if got != want {
		t.Fatalf("breakdown = %+v, want %+v", got, want)
	}
	if neg := NewUptimeBreakdown(-5); neg != (UptimeBreakdown{}) {
		t.Fatalf("negative uptime = %+v", neg)
	}
	if nan := NewUptimeBreakdown(math.NaN()); nan != (UptimeBreakdown{}) {
		t.Fatalf("NaN uptime = %+v", nan)
	}
	for _, inf := range []float64{math.Inf(1), math.Inf(-1)} {
		if got := NewUptimeBreakdown(inf); got != (UptimeBreakdown{}) {
			t.Fatalf("NewUptimeBreakdown(%v) = %+v", inf, got)
		}
	}
}

func TestUptimeBreakdownClampsHugeValues(t *testing.T) {
	for _, in := range []float64{1e30, math.MaxFloat64, math.MaxInt64} {
		got := NewUptimeBreakdown(in)
		if got.TotalSeconds() != math.MaxInt64 {
			t.Errorf("NewUptimeBreakdown(%v) = %+v recomposes to %d", in, got, got.TotalSeconds())
		}
		if got.Years < 0 || got.Days < 0 || got.Hours < 0 || got.Minutes < 0 || got.Seconds < 0 {
			t.Errorf("NewUptimeBreakdown(%v) has negative fields: %+v", in, got)
		}
	}
}

func TestUptimeString(t *testing.T) {
	tests := []struct {
		in   UptimeBreakdown
		want string
	}{
		{UptimeBreakdown{}, " 0 minutes, 0 seconds"},
		{UptimeBreakdown{Minutes: 5, Seconds: 3}, " 5 minutes, 3 seconds"},
		{UptimeBreakdown{Days: 1, Hours: 10, Minutes: 17, Seconds: 36}, " 1 days, 10 hours, 17 minutes, 36 seconds"},
		{UptimeBreakdown{Years: 2, Minutes: 1}, " 2 years, 1 minutes, 0 seconds"},
		{UptimeBreakdown{Hours: 4}, " 4 hours, 0 minutes, 0 seconds"},
		{UptimeBreakdown{Years: 1, Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, " 1 years, 2 days, 3 hours, 4 minutes, 5 seconds"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRatioSlots(t *testing.T) {
	tests := []struct {
		ratio Ratio
		want  int
	}{
		{Ratio{Value: 1.0, Valid: true}, 20},
		{Ratio{Value: 0.0, Valid: true}, 0},
		{Ratio{Value: 0.5, Valid: true}, 10},
		{Ratio{Value: 0.15, Valid: true}, 3},
		{Ratio{Value: 0.049, Valid: true}, 0},
		{Ratio{Value: 0.999, Valid: true}, 19},
		{Ratio{Value: 1.7, Valid: true}, 20},
		{Ratio{Value: -0.3, Valid: true}, 0},
		{Ratio{Value: math.NaN(), Valid: true}, 0},
		{Ratio{Value: 0.9}, 0},
	}
	for _, tc := range tests {
		if got := tc.ratio.Slots(); got != tc.want {
			t.Errorf("%+v.Slots() = %d, want %d", tc.ratio, got, tc.want)
		}
	}
}

func TestRatioPercent(t *testing.T) {
	if got := (Ratio{}).Percent(); got != 0 {
		t.Fatalf("undefined ratio percent = %v", got)
	}
	if got := (Ratio{Value: 0.25, Valid: true}).Percent(); got != 25 {
		t.Fatalf("percent = %v", got)
	}
}

func TestMemoryUsage(t *testing.T) {
	h := HardwareMetrics{MemoryTotalGB: 8, MemoryActiveGB: 2}
	if got := h.MemoryUsage(); !got.Valid || got.Value != 0.25 {
		t.Fatalf("MemoryUsage = %+v", got)
	}
	if got := (HardwareMetrics{}).MemoryUsage(); got.Valid {
		t.Fatalf("zero total should be undefined, got %+v", got)
	}
}

func TestStateFromCode(t *testing.T) {
	tests := map[byte]string{
		'R': "running",
		'S': "sleeping",
		'D': "disk sleep",
		'Z': "zombie",
		'T': "tracing stop",
		't': "tracing stop",
		'X': "dead",
		'I': "sleeping",
		0:   "sleeping",
	}
	for code, want := range tests {
		if got := StateFromCode(code).String(); got != want {
			t.Errorf("StateFromCode(%q) = %q, want %q", code, got, want)
		}
	}
	if got := TaskState(99).String(); got != "sleeping" {
		t.Fatalf("out of range state = %q", got)
	}
}

func TestTruncateName(t *testing.T) {
	long := "abcdefghijklmnopqrstuvwxyz0123"
	if len(long) != 30 {
		t.Fatalf("fixture length %d", len(long))
	}
	got := TruncateName(long)
	if len(got) != MaxNameLength || got != long[:24] {
		t.Fatalf("TruncateName = %q (%d chars)", got, len(got))
	}
	if got := TruncateName("bash"); got != "bash" {
		t.Fatalf("short name changed: %q", got)
	}
}

func TestTaskListSortByPID(t *testing.T) {
	list := TaskList{{PID: 30}, {PID: 2}, {PID: 117}, {PID: 1}}
	list.SortByPID()
	for i, want := range []int{1, 2, 30, 117} {
		if list[i].PID != want {
			t.Fatalf("list[%d].PID = %d, want %d", i, list[i].PID, want)
		}
	}
}
