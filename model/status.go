package model

import (
	"encoding/json"
)

// Status is the backend-owned lifecycle state of an article.
type Status string

const (
	StatusPending          Status = "pending"
	StatusResearching      Status = "researching"
	StatusWriting          Status = "writing"
	StatusGeneratingImages Status = "generating_images"
	StatusIntegrating      Status = "integrating"
	StatusCompleted        Status = "completed"
	StatusFailed           Status = "failed"

	// StatusUnknown stands in for any value the backend sends outside the set above.
	StatusUnknown Status = "unknown"
)

var knownStatuses = map[Status]bool{
	StatusPending:          true,
	StatusResearching:      true,
	StatusWriting:          true,
	StatusGeneratingImages: true,
	StatusIntegrating:      true,
	StatusCompleted:        true,
	StatusFailed:           true,
}

// ParseStatus maps raw backend values onto the closed set.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if knownStatuses[s] {
		return s
	}
	return StatusUnknown
}

func (s Status) Known() bool { return knownStatuses[s] }

// IsTerminal is true once no further transitions or polling occur.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}

// ProgressSteps is the display ordering of in-flight statuses.
var ProgressSteps = []Status{
	StatusResearching,
	StatusWriting,
	StatusGeneratingImages,
	StatusIntegrating,
}

// StepIndex positions a status within ProgressSteps. pending sits before
// the first step (-1) and completed after the last (len). failed and
// unknown statuses have no position and return ok=false.
func StepIndex(s Status) (index int, ok bool) {
	switch s {
	case StatusPending:
		return -1, true
	case StatusCompleted:
		return len(ProgressSteps), true
	case StatusFailed, StatusUnknown:
		return 0, false
	}
	for i, step := range ProgressSteps {
		if step == s {
			return i, true
		}
	}
	return 0, false
}

type StepState string

const (
	StepDone    StepState = "done"
	StepCurrent StepState = "current"
	StepWaiting StepState = "waiting"
	StepUnknown StepState = "unknown"
)

type Step struct {
	Status Status    `json:"status"`
	State  StepState `json:"state"`
}

// Steps marks every progress step relative to the current status.
func Steps(current Status) []Step {
	idx, ok := StepIndex(current)
	steps := make([]Step, len(ProgressSteps))
	for i, s := range ProgressSteps {
		state := StepUnknown
		if ok {
			switch {
			case i < idx:
				state = StepDone
			case i == idx:
				state = StepCurrent
			default:
				state = StepWaiting
			}
		}
		steps[i] = Step{Status: s, State: state}
	}
	return steps
}
