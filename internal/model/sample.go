package model

// Report is everything one run collected. A nil section was not
// selected; TasksIncluded distinguishes "not selected" from an empty
// task list.
type Report struct {
	System        *SystemIdentity
	Hardware      *HardwareMetrics
	Kernel        *KernelCounters
	Tasks         TaskList
	TasksIncluded bool
}

// SystemIdentity names the machine and how long it has been up.
type SystemIdentity struct {
	Hostname      string
	KernelVersion string
	UptimeSeconds float64
}

// Uptime breaks UptimeSeconds down into calendar-ish units.
func (s SystemIdentity) Uptime() UptimeBreakdown {
	return NewUptimeBreakdown(s.UptimeSeconds)
}

// HardwareMetrics captures CPU identity, load and memory pressure.
type HardwareMetrics struct {
	CPUModel     string
	LogicalUnits int

	LoadAverage [3]float64
	// LoadAverageText is the three loadavg tokens exactly as the
	// kernel printed them, joined by single spaces.
	LoadAverageText string

	CPUUsage Ratio

	MemoryTotalGB  float64
	MemoryActiveGB float64
}

// MemoryUsage is active over total; undefined when total is zero.
func (h HardwareMetrics) MemoryUsage() Ratio {
	if h.MemoryTotalGB == 0 {
		return Ratio{}
	}
	return Ratio{Value: h.MemoryActiveGB / h.MemoryTotalGB, Valid: true}
}

// KernelCounters are cumulative counters since boot plus the number of
// task directories that could be opened at scan time.
type KernelCounters struct {
	Interrupts       int64
	ContextSwitches  int64
	Forks            int64
	RunningTaskCount int
}
