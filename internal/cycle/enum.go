package cycle

type CycleStatus string

const (
	CycleStatusActive   CycleStatus = "active"
	CycleStatusInactive CycleStatus = "inactive"
)

var AllStatuses = []CycleStatus{
	CycleStatusActive,
	CycleStatusInactive,
}

func (s CycleStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
