package model

import "sort"

// MaxNameLength caps the task name stored in a ProcessRecord.
const MaxNameLength = 24

// TaskState is the scheduler state of a task.
type TaskState int

const (
	StateSleeping TaskState = iota
	StateRunning
	StateDiskSleep
	StateZombie
	StateTracingStop
	StateDead
)

var stateNames = [...]string{
	StateSleeping:    "sleeping",
	StateRunning:     "running",
	StateDiskSleep:   "disk sleep",
	StateZombie:      "zombie",
	StateTracingStop: "tracing stop",
	StateDead:        "dead",
}

func (s TaskState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return stateNames[StateSleeping]
	}
	return stateNames[s]
}

// StateFromCode maps the first letter of a status "State:" value.
// Unknown letters, including the zero byte for a missing value, fall
// back to sleeping.
func StateFromCode(code byte) TaskState {
	switch code {
	case 'R':
		return StateRunning
	case 'S':
		return StateSleeping
	case 'D':
		return StateDiskSleep
	case 'Z':
		return StateZombie
	case 'T', 't':
		return StateTracingStop
	case 'X':
		return StateDead
	default:
		return StateSleeping
	}
}

// ProcessRecord is one row of the task list.
type ProcessRecord struct {
	PID         int
	State       TaskState
	Name        string
	Owner       string
	ThreadCount int
}

// TruncateName shortens name to MaxNameLength characters.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:MaxNameLength])
}

// TaskList keeps rows in directory enumeration order unless sorted.
type TaskList []ProcessRecord

// SortByPID orders the list by ascending pid in place.
func (l TaskList) SortByPID() {
	sort.SliceStable(l, func(i, j int) bool { return l[i].PID < l[j].PID })
}
