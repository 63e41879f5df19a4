package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rtmacaibay/proc-inspector/internal/config"
	"github.com/rtmacaibay/proc-inspector/internal/logging"
	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/sampler"
	"github.com/rtmacaibay/proc-inspector/internal/ui"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "procinspect [-ahlrst] [-p procfs_dir]",
		Short: "procinspect: one-shot procfs report",
		Long: `procinspect reads a procfs tree once and prints a report of the
system identity, hardware usage, kernel counters and running tasks.
With no section flags every section is shown.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(c.UsageString())
		return err
	})

	finalize := config.BindFlags(cmd.Flags(), &cfg)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		finalize()
		return run(cfg, stdout, stderr)
	}
	return cmd
}

func run(cfg config.Config, stdout, stderr io.Writer) error {
	log := logging.New(stderr, cfg.Debug)
	if cfg.AlternateRoot() {
		log.V(logging.Verbosity).Info("Using alternative proc directory", "root", cfg.Root)
	}
	log.V(logging.Verbosity).Info("Options selected", "sections", cfg.Sections.String())

	fs, err := cfg.Validate()
	if err != nil {
		return err
	}
	s := sampler.FromConfig(fs, cfg, log)
	collect := func() model.Report { return s.Collect(cfg.Sections) }

	var report model.Report
	if !cfg.Debug && isTerminal(stderr) {
		report, err = ui.RunWithProgress(stderr, "reading "+cfg.Root, collect)
		if err != nil {
			return err
		}
	} else {
		report = collect()
	}
	return ui.Render(stdout, report)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "procinspect: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
