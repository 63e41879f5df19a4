package sampler

import (
	"errors"
	"path"
	"strconv"
	"strings"

	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/procfs"
	"github.com/rtmacaibay/proc-inspector/internal/users"
)

// errTaskGone marks a task that exited while it was being read.
var errTaskGone = errors.New("task exited")

// Tasks builds one ProcessRecord per task directory. Tasks that vanish
// mid-scan are dropped silently. Throttle is slept between
// directories.
func (s *Sampler) Tasks() (model.TaskList, error) {
	names, err := s.fs.TaskDirs()
	if err != nil {
		return nil, err
	}

	var (
		tasks = make(model.TaskList, 0, len(names))
		errs  []error
	)
	for i, name := range names {
		if i > 0 {
			s.clock.Sleep(s.throttle)
		}
		record, err := s.task(name)
		if errors.Is(err, errTaskGone) {
			s.log.V(1).Info("task vanished during scan", "pid", name)
			continue
		}
		if err != nil {
			errs = append(errs, err)
		}
		tasks = append(tasks, record)
	}

	if s.sortByPID {
		tasks.SortByPID()
	}
	return tasks, errors.Join(errs...)
}

func (s *Sampler) task(name string) (model.ProcessRecord, error) {
	if !s.fs.IsDir(name) {
		return model.ProcessRecord{}, errTaskGone
	}
	data, err := s.fs.ReadFile(path.Join(name, statusFile))
	if errors.Is(err, procfs.ErrUnavailable) {
		return model.ProcessRecord{}, errTaskGone
	}

	pid, _ := strconv.Atoi(name)
	record := parseStatus(data, s.users)
	record.PID = pid
	return record, err
}

// parseStatus extracts the Name, State, Uid and Threads lines of a
// status file. Values follow the label's tab; the State value is cut
// at its first space so only the state letter remains.
func parseStatus(data []byte, resolver users.Resolver) model.ProcessRecord {
	var record model.ProcessRecord
	for _, line := range procfs.Lines(data) {
		c := procfs.NewCursor(line, "\t")
		label, _ := c.Next()
		switch strings.TrimSuffix(label, ":") {
		case "Name":
			value, _ := c.Next()
			record.Name = model.TruncateName(value)
		case "State":
			c.SetDelims(" ")
			value, _ := c.Next()
			var code byte
			if value != "" {
				code = value[0]
			}
			record.State = model.StateFromCode(code)
		case "Uid":
			value, _ := c.Next()
			record.Owner = users.NameOrUID(resolver, value)
		case "Threads":
			value, _ := c.Next()
			record.ThreadCount = int(procfs.ParseInt(value))
		}
	}
	return record
}
