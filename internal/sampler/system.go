package sampler

import (
	"errors"

	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/procfs"
)

// System reads hostname, kernel release and uptime. Each file is
// independent: a missing one leaves only its own field empty.
func (s *Sampler) System() (model.SystemIdentity, error) {
	var (
		identity model.SystemIdentity
		errs     []error
	)

	identity.Hostname, errs = s.firstToken(hostnameFile, errs)
	identity.KernelVersion, errs = s.firstToken(osReleaseFile, errs)

	var uptime string
	uptime, errs = s.firstToken(uptimeFile, errs)
	identity.UptimeSeconds = procfs.ParseFloat(uptime)

	return identity, errors.Join(errs...)
}

// firstToken returns the first whitespace-delimited token of name. A
// read failure still yields whatever was read before it.
func (s *Sampler) firstToken(name string, errs []error) (string, []error) {
	data, err := s.fs.ReadFile(name)
	if err != nil {
		errs = append(errs, err)
	}
	return procfs.FirstToken(string(data), whitespace), errs
}
