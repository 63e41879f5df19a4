package sampler

import (
	"errors"

	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/procfs"
)

// Kernel counts live task directories and reads the interrupt,
// context switch and fork counters from /proc/stat.
func (s *Sampler) Kernel() (model.KernelCounters, error) {
	var (
		counters model.KernelCounters
		errs     []error
	)

	names, err := s.fs.TaskDirs()
	errs = appendErr(errs, err)
	for _, name := range names {
		// Tasks that exit between the listing and this probe are
		// not counted and not reported.
		if s.fs.IsDir(name) {
			counters.RunningTaskCount++
		}
	}

	data, err := s.fs.ReadFile(statFile)
	errs = appendErr(errs, err)
	counters.Interrupts, counters.ContextSwitches, counters.Forks = parseKernelStat(data)

	return counters, errors.Join(errs...)
}

// parseKernelStat picks the first value of the intr, ctxt and
// processes lines. Scanning ends at processes; labels never seen stay
// zero.
func parseKernelStat(data []byte) (interrupts, contextSwitches, forks int64) {
	for _, line := range procfs.Lines(data) {
		c := procfs.NewCursor(line, " \t")
		label, _ := c.Next()
		switch label {
		case "intr":
			value, _ := c.Next()
			interrupts = procfs.ParseInt(value)
		case "ctxt":
			value, _ := c.Next()
			contextSwitches = procfs.ParseInt(value)
		case "processes":
			value, _ := c.Next()
			forks = procfs.ParseInt(value)
			return interrupts, contextSwitches, forks
		}
	}
	return interrupts, contextSwitches, forks
}
