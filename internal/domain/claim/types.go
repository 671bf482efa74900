package claim

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave this status.
// ACCEPTED is not terminal: a trade cancellation forces it back to CANCELED.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCanceled
}
