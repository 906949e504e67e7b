package objective

type ObjectiveStatus string

const (
	StatusDraft     ObjectiveStatus = "draft"
	StatusActive    ObjectiveStatus = "active"
	StatusCompleted ObjectiveStatus = "completed"
)

var AllStatuses = []ObjectiveStatus{
	StatusDraft,
	StatusActive,
	StatusCompleted,
}

func (s ObjectiveStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
