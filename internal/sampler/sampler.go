package sampler

import (
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/rtmacaibay/proc-inspector/internal/clock"
	"github.com/rtmacaibay/proc-inspector/internal/config"
	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/procfs"
	"github.com/rtmacaibay/proc-inspector/internal/users"
)

// Files read relative to the procfs root.
const (
	hostnameFile  = "sys/kernel/hostname"
	osReleaseFile = "sys/kernel/osrelease"
	uptimeFile    = "uptime"
	cpuInfoFile   = "cpuinfo"
	loadAvgFile   = "loadavg"
	statFile      = "stat"
	memInfoFile   = "meminfo"
	statusFile    = "status"
)

// whitespace separates tokens in most single-line procfs files.
const whitespace = " \t\n"

// Options tunes a Sampler. Zero values pick the production defaults.
type Options struct {
	Clock  clock.Clock
	Logger logr.Logger
	Users  users.Resolver

	// SampleWindow separates the two /proc/stat reads used for CPU
	// usage.
	SampleWindow time.Duration

	// Throttle is slept between task directories. Zero disables it.
	Throttle time.Duration

	// SortByPID orders the task list by pid instead of directory
	// enumeration order.
	SortByPID bool
}

// Sampler builds report snapshots from one procfs tree. The builders
// share nothing but the tree and the injected collaborators, so they
// can run in any order.
type Sampler struct {
	fs           procfs.FS
	clock        clock.Clock
	log          logr.Logger
	users        users.Resolver
	sampleWindow time.Duration
	throttle     time.Duration
	sortByPID    bool
}

func New(fs procfs.FS, opts Options) *Sampler {
	s := &Sampler{
		fs:           fs,
		clock:        opts.Clock,
		log:          opts.Logger,
		users:        opts.Users,
		sampleWindow: opts.SampleWindow,
		throttle:     opts.Throttle,
		sortByPID:    opts.SortByPID,
	}
	if s.clock == nil {
		s.clock = clock.Real()
	}
	if s.users == nil {
		s.users = users.NewSystem()
	}
	return s
}

// FromConfig wires a Sampler from the command line configuration.
func FromConfig(fs procfs.FS, cfg config.Config, log logr.Logger) *Sampler {
	return New(fs, Options{
		Logger:       log,
		SampleWindow: cfg.SampleWindow,
		Throttle:     cfg.Throttle,
		SortByPID:    cfg.SortByPID,
	})
}

// Collect runs the builders selected by sections, in report order.
// Soft failures are logged and leave default values behind; Collect
// itself never fails.
func (s *Sampler) Collect(sections config.Sections) model.Report {
	var report model.Report

	if sections.System {
		system, err := s.System()
		s.logSoft("system", err)
		report.System = &system
	}
	if sections.Hardware {
		hardware, err := s.Hardware()
		s.logSoft("hardware", err)
		report.Hardware = &hardware
	}
	if sections.TaskSummary {
		kernel, err := s.Kernel()
		s.logSoft("task_summary", err)
		report.Kernel = &kernel
	}
	if sections.TaskList {
		tasks, err := s.Tasks()
		s.logSoft("task_list", err)
		report.Tasks = tasks
		report.TasksIncluded = true
	}
	return report
}

func (s *Sampler) logSoft(section string, err error) {
	if err == nil {
		return
	}
	// Builders hand back errors.Join results; log each failure on its
	// own line.
	if _, single := err.(*procfs.Error); !single {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				s.logSoft(section, e)
			}
			return
		}
	}
	kind := "other"
	switch {
	case errors.Is(err, procfs.ErrUnavailable):
		kind = "unavailable"
	case errors.Is(err, procfs.ErrReadFailure):
		kind = "read_failure"
	}
	s.log.V(1).Info("section degraded", "section", section, "kind", kind, "error", err.Error())
}
