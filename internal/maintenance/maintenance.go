// Package maintenance schedules machine servicing. Task status only
// moves forward; a completed task is a historical record, not a slot
// to reopen.
package maintenance

type Status string

const (
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

type Frequency string

const (
	FrequencyNone    Frequency = "NONE"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
	FrequencyYearly  Frequency = "YEARLY"
)

// Task is one scheduled service job. ParentTaskID links a recurrence
// back to the task whose completion spawned it.
type Task struct {
	ID             string    `json:"id"`
	MachineID      string    `json:"machineId"`
	MachineName    string    `json:"machineName"`
	TechnicianID   string    `json:"technicianId"`
	TechnicianName string    `json:"technicianName"`
	ScheduledDate  string    `json:"scheduledDate"`
	Status         Status    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
	Frequency      Frequency `json:"frequency"`
	ParentTaskID   string    `json:"parentTaskId,omitempty"`
}

var transitionMap = map[Status][]Status{
	StatusInProgress: {StatusScheduled},
	StatusCompleted:  {StatusScheduled, StatusInProgress},
}

// ValidTransition reports whether a task may move from one status to
// the target. Backward moves are never valid.
func ValidTransition(to, from Status) bool {
	allowed, ok := transitionMap[to]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == from {
			return true
		}
	}
	return false
}
