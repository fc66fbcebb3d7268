// Package visitor keeps the gate register. Entries are prepended so
// the latest arrival is always first.
package visitor

// Visitor is one gate entry. OutTime stays empty until checkout.
type Visitor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Purpose  string `json:"purpose"`
	InTime   string `json:"inTime"`
	OutTime  string `json:"outTime,omitempty"`
	Date     string `json:"date"`
	HostName string `json:"hostName,omitempty"`
}

// CheckedOut reports whether the visitor has left the premises.
func (v Visitor) CheckedOut() bool {
	return v.OutTime != ""
}
