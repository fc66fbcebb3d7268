// Package attendance keeps the daily muster. One record per worker per
// day; a second write for the same (user, date) pair replaces the first,
// so repeated biometric syncs never duplicate.
package attendance

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusLeave   Status = "LEAVE"
)

type Source string

const (
	SourceManual    Source = "MANUAL"
	SourceBiometric Source = "BIOMETRIC"
)

type Record struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Date     string `json:"date"`
	InTime   string `json:"inTime,omitempty"`
	OutTime  string `json:"outTime,omitempty"`
	Status   Status `json:"status"`
	Source   Source `json:"source"`
	Remarks  string `json:"remarks,omitempty"`
}
