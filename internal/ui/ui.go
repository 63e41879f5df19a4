package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rtmacaibay/proc-inspector/internal/model"
)

const (
	gaugeFill  = "#"
	gaugeEmpty = "-"
)

// styles are bound to one output so colors are only emitted when that
// output is a terminal.
type styles struct {
	title  lipgloss.Style
	label  lipgloss.Style
	filled lipgloss.Style
	header lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		label:  r.NewStyle().Foreground(lipgloss.Color("81")),
		filled: r.NewStyle().Foreground(lipgloss.Color("204")),
		header: r.NewStyle().Bold(true),
	}
}

// Render writes the selected sections of report to w in the order
// system, hardware, task summary, task list.
func Render(w io.Writer, report model.Report) error {
	bw := bufio.NewWriter(w)
	st := newStyles(w)

	if report.System != nil {
		renderSystem(bw, st, *report.System)
	}
	if report.Hardware != nil {
		renderHardware(bw, st, *report.Hardware)
	}
	if report.Kernel != nil {
		renderKernel(bw, st, *report.Kernel)
	}
	if report.TasksIncluded {
		renderTasks(bw, st, report.Tasks)
	}
	return bw.Flush()
}

func section(w io.Writer, st styles, title string) {
	fmt.Fprintln(w, st.title.Render(title))
	fmt.Fprintln(w, strings.Repeat("-", len(title)))
}

func field(w io.Writer, st styles, label, format string, args ...any) {
	fmt.Fprintf(w, "%s "+format+"\n", append([]any{st.label.Render(label + ":")}, args...)...)
}

func renderSystem(w io.Writer, st styles, s model.SystemIdentity) {
	section(w, st, "System Information")
	field(w, st, "Hostname", "%s", s.Hostname)
	field(w, st, "Kernel Version", "%s", s.KernelVersion)
	fmt.Fprintf(w, "%s%s\n\n", st.label.Render("Uptime:"), s.Uptime())
}

func renderHardware(w io.Writer, st styles, h model.HardwareMetrics) {
	section(w, st, "Hardware Information")
	field(w, st, "CPU Model", "%s", h.CPUModel)
	field(w, st, "Processing Units", "%d", h.LogicalUnits)
	field(w, st, "Load Average (1/5/15 min)", "%s", h.LoadAverageText)

	fmt.Fprintf(w, "%s    %s %.1f%%\n",
		st.label.Render("CPU Usage:"), gaugeBar(st, h.CPUUsage), h.CPUUsage.Percent())

	mem := h.MemoryUsage()
	fmt.Fprintf(w, "%s %s %.1f%% (%.1f GB / %.1f GB)\n\n",
		st.label.Render("Memory Usage:"), gaugeBar(st, mem), mem.Percent(),
		h.MemoryActiveGB, h.MemoryTotalGB)
}

func renderKernel(w io.Writer, st styles, k model.KernelCounters) {
	section(w, st, "Task Information")
	field(w, st, "Tasks running", "%d", k.RunningTaskCount)
	fmt.Fprintln(w, st.label.Render("Since boot:"))
	fmt.Fprintf(w, "    Interrupts: %d\n", k.Interrupts)
	fmt.Fprintf(w, "    Context Switches: %d\n", k.ContextSwitches)
	fmt.Fprintf(w, "    Forks: %d\n\n", k.Forks)
}

const taskRowFormat = "%5s | %12s | %25s | %15s | %s"

func renderTasks(w io.Writer, st styles, tasks model.TaskList) {
	fmt.Fprintln(w, st.header.Render(fmt.Sprintf(taskRowFormat, "PID", "State", "Task Name", "User", "Tasks")))
	for _, t := range tasks {
		fmt.Fprintf(w, "%5d | %12s | %25s | %15s | %d\n",
			t.PID, t.State, t.Name, t.Owner, t.ThreadCount)
	}
	fmt.Fprintln(w)
}

// gaugeBar draws a model.GaugeSlots wide bar; an undefined ratio is
// drawn empty.
func gaugeBar(st styles, r model.Ratio) string {
	filled := r.Slots()
	return "[" + st.filled.Render(strings.Repeat(gaugeFill, filled)) +
		strings.Repeat(gaugeEmpty, model.GaugeSlots-filled) + "]"
}
