package trade

type Status string

const (
	StatusMatched   Status = "MATCHED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusMatched, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}
