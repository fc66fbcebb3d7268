// Package task is the assignment board. Managers hand out tasks, the
// assignee works them to UNDER_REVIEW, and the manager either accepts
// the work or sends it back with feedback.
package task

type Status string

const (
	StatusTodo        Status = "TODO"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusDone        Status = "DONE"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Task carries name snapshots for both sides of the assignment, taken
// at creation time.
type Task struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	AssignedToID    string   `json:"assignedToId"`
	AssignedToName  string   `json:"assignedToName"`
	AssignedByID    string   `json:"assignedById"`
	AssignedByName  string   `json:"assignedByName"`
	DueDate         string   `json:"dueDate"`
	Status          Status   `json:"status"`
	Priority        Priority `json:"priority"`
	ManagerFeedback string   `json:"managerFeedback,omitempty"`
}

var transitionMap = map[Status][]Status{
	StatusInProgress:  {StatusTodo, StatusUnderReview},
	StatusUnderReview: {StatusInProgress},
	StatusDone:        {StatusUnderReview},
}

// ValidTransition reports whether a task may move to the target status.
// The only backward move is a review rejection, UNDER_REVIEW back to
// IN_PROGRESS.
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
