package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/rtmacaibay/proc-inspector/internal/procfs"
)

// Sections selects which report sections are built.
type Sections struct {
	System      bool
	Hardware    bool
	TaskSummary bool
	TaskList    bool
}

// AllSections turns every section on.
func AllSections() Sections {
	return Sections{System: true, Hardware: true, TaskSummary: true, TaskList: true}
}

// Any reports whether at least one section is selected.
func (s Sections) Any() bool {
	return s.System || s.Hardware || s.TaskSummary || s.TaskList
}

func (s Sections) String() string {
	var names []string
	if s.Hardware {
		names = append(names, "hardware")
	}
	if s.System {
		names = append(names, "system")
	}
	if s.TaskList {
		names = append(names, "task_list")
	}
	if s.TaskSummary {
		names = append(names, "task_summary")
	}
	return strings.Join(names, " ")
}

// Config carries runtime options for procinspect. It is built once
// and passed by value; nothing mutates it after flag parsing.
type Config struct {
	Root         string
	Sections     Sections
	Throttle     time.Duration
	SampleWindow time.Duration
	SortByPID    bool
	Debug        bool
}

func Default() Config {
	return Config{
		Root:         procfs.DefaultRoot,
		Throttle:     time.Millisecond,
		SampleWindow: time.Second,
		SortByPID:    true,
	}
}

// AlternateRoot reports whether -p moved the root away from /proc.
func (c Config) AlternateRoot() bool {
	return c.Root != procfs.DefaultRoot
}

// BindFlags registers the command line options on fs, writing into
// cfg. The returned func must run after parsing: it applies "-a" and
// the rule that choosing no section means all of them.
func BindFlags(fs *pflag.FlagSet, cfg *Config) func() {
	var all bool
	fs.BoolVarP(&all, "all", "a", false, "display all sections (equivalent to -lrst, default)")
	fs.BoolVarP(&cfg.Sections.TaskList, "list", "l", false, "task list")
	fs.StringVarP(&cfg.Root, "procfs", "p", cfg.Root, "procfs mount point")
	fs.BoolVarP(&cfg.Sections.Hardware, "hardware", "r", false, "hardware information")
	fs.BoolVarP(&cfg.Sections.System, "system", "s", false, "system information")
	fs.BoolVarP(&cfg.Sections.TaskSummary, "tasks", "t", false, "task information")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log diagnostics to stderr")
	fs.DurationVar(&cfg.Throttle, "throttle", cfg.Throttle, "pause between task directories (0 disables)")
	fs.DurationVar(&cfg.SampleWindow, "sample-window", cfg.SampleWindow, "time between the two CPU samples")
	fs.BoolVar(&cfg.SortByPID, "sort-by-pid", cfg.SortByPID, "sort the task list by pid instead of directory order")

	return func() {
		if all || !cfg.Sections.Any() {
			cfg.Sections = AllSections()
		}
	}
}

// Validate checks option values and that the root is an openable
// directory. A bad root yields an error matching procfs.ErrInvalidRoot.
func (c Config) Validate() (procfs.FS, error) {
	if c.Throttle < 0 {
		return procfs.FS{}, fmt.Errorf("throttle must be >= 0, got %s", c.Throttle)
	}
	if c.SampleWindow < 0 {
		return procfs.FS{}, fmt.Errorf("sample window must be >= 0, got %s", c.SampleWindow)
	}
	fs, err := procfs.NewFS(c.Root)
	if err != nil {
		return procfs.FS{}, fmt.Errorf("procfs root %s: %w", c.Root, err)
	}
	return fs, nil
}
