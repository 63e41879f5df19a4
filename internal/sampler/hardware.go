package sampler

import (
	"errors"
	"strings"

	"github.com/rtmacaibay/proc-inspector/internal/model"
	"github.com/rtmacaibay/proc-inspector/internal/procfs"
)

const (
	// cpuSampleFields is how many numeric fields of the aggregate
	// "cpu" line are summed into the total.
	cpuSampleFields = 9
	// cpuIdleField is the 1-based position of the idle counter.
	cpuIdleField = 4

	kilobytesPerGigabyte = 1024 * 1024
)

// Hardware reads CPU identity, load average, memory, and samples
// /proc/stat twice, SampleWindow apart, to derive CPU usage. It is the
// only builder that blocks for a noticeable time.
func (s *Sampler) Hardware() (model.HardwareMetrics, error) {
	var (
		hw   model.HardwareMetrics
		errs []error
	)

	data, err := s.fs.ReadFile(cpuInfoFile)
	errs = appendErr(errs, err)
	hw.CPUModel, hw.LogicalUnits = parseCPUInfo(data)

	data, err = s.fs.ReadFile(loadAvgFile)
	errs = appendErr(errs, err)
	hw.LoadAverage, hw.LoadAverageText = parseLoadAvg(data)

	first, err := s.cpuSample()
	errs = appendErr(errs, err)
	s.clock.Sleep(s.sampleWindow)
	second, err := s.cpuSample()
	errs = appendErr(errs, err)
	hw.CPUUsage = cpuUsage(first, second)

	data, err = s.fs.ReadFile(memInfoFile)
	errs = appendErr(errs, err)
	totalKB, activeKB := parseMemInfo(data)
	hw.MemoryTotalGB = totalKB / kilobytesPerGigabyte
	hw.MemoryActiveGB = activeKB / kilobytesPerGigabyte

	return hw, errors.Join(errs...)
}

// parseCPUInfo returns the first "model name" value and the "siblings"
// count doubled. Doubling mirrors how the report has always counted
// processing units; it is not derived from the topology. Scanning
// stops at the siblings line, so a model name after it is ignored.
func parseCPUInfo(data []byte) (modelName string, logicalUnits int) {
	for _, line := range procfs.Lines(data) {
		if modelName == "" && strings.Contains(line, "model name") {
			modelName = strings.TrimSpace(afterColon(line))
		}
		if strings.Contains(line, "siblings") {
			siblings := procfs.ParseInt(procfs.FirstToken(afterColon(line), whitespace))
			logicalUnits = int(siblings) * 2
			break
		}
	}
	return modelName, logicalUnits
}

func afterColon(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return value
}

// parseLoadAvg returns the 1, 5 and 15 minute averages along with the
// original tokens joined by single spaces.
func parseLoadAvg(data []byte) ([3]float64, string) {
	var (
		loads  [3]float64
		tokens []string
	)
	c := procfs.NewCursor(string(data), whitespace)
	for i := range loads {
		token, ok := c.Next()
		if !ok {
			break
		}
		loads[i] = procfs.ParseFloat(token)
		tokens = append(tokens, token)
	}
	return loads, strings.Join(tokens, " ")
}

// cpuSample holds the jiffy counters of one aggregate "cpu" line.
type cpuSample struct {
	total float64
	idle  float64
}

func (s *Sampler) cpuSample() (cpuSample, error) {
	data, err := s.fs.ReadFile(statFile)
	return parseCPUSample(data), err
}

// parseCPUSample sums the first nine counters after the label of the
// first line and keeps the fourth (idle) separately. Missing counters
// count as zero.
func parseCPUSample(data []byte) cpuSample {
	var sample cpuSample
	lines := procfs.Lines(data)
	if len(lines) == 0 {
		return sample
	}
	c := procfs.NewCursor(lines[0], " \t")
	if !c.Skip(1) {
		return sample
	}
	for field := 1; field <= cpuSampleFields; field++ {
		token, ok := c.Next()
		if !ok {
			break
		}
		value := procfs.ParseFloat(token)
		sample.total += value
		if field == cpuIdleField {
			sample.idle = value
		}
	}
	return sample
}

// cpuUsage is 1 - idleDelta/totalDelta, clamped to [0, 1]. A zero
// total delta has no meaningful ratio and yields an undefined Ratio.
func cpuUsage(first, second cpuSample) model.Ratio {
	totalDelta := second.total - first.total
	if totalDelta == 0 {
		return model.Ratio{}
	}
	usage := 1 - (second.idle-first.idle)/totalDelta
	if usage < 0 {
		usage = 0
	}
	if usage > 1 {
		usage = 1
	}
	return model.Ratio{Value: usage, Valid: true}
}

// parseMemInfo returns the second token of the first two lines, in
// kilobytes. On a stock kernel those are MemTotal and MemFree; the
// second value is reported as the active figure.
func parseMemInfo(data []byte) (totalKB, activeKB float64) {
	lines := procfs.Lines(data)
	if len(lines) > 0 {
		totalKB = secondToken(lines[0])
	}
	if len(lines) > 1 {
		activeKB = secondToken(lines[1])
	}
	return totalKB, activeKB
}

func secondToken(line string) float64 {
	c := procfs.NewCursor(line, " \t")
	if !c.Skip(1) {
		return 0
	}
	token, _ := c.Next()
	return procfs.ParseFloat(token)
}

func appendErr(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}
