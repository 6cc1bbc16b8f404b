package domain

// Status is the lifecycle state of a booking request. The string values
// are stored verbatim in the database, so they are part of the schema
// contract and must not change casing.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func AllStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether from → to is a legal move. Only a
// pending request may change state, and only into a terminal state.
func CanTransition(from, to Status) bool {
	return from == StatusPending && to.Terminal()
}

// StatusCounts always carries all three buckets, even when a bucket is
// zero or the status column does not exist yet.
type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func (c StatusCounts) Total() int {
	return c.Pending + c.Approved + c.Rejected
}
