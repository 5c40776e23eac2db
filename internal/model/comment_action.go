package model

type ActionStatus string

const (
	ActionOpen       ActionStatus = "open"
	ActionInProgress ActionStatus = "in_progress"
	ActionDone       ActionStatus = "done"
)

// ValidActionStatus reports whether s is one of the three known states.
// Transitions between states are deliberately unconstrained.
func ValidActionStatus(s ActionStatus) bool {
	switch s {
	case ActionOpen, ActionInProgress, ActionDone:
		return true
	}
	return false
}

// CommentAction is a tracked remediation task derived from a single
// free-text comment. Actions are never deleted; only status and metadata
// are updated after creation.
// swagger:model CommentAction
type CommentAction struct {
	BaseModel
	AnswerID     uint         `gorm:"index;not null" json:"answerId"`
	DepartmentID uint         `gorm:"index;not null" json:"departmentId"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Status       ActionStatus `gorm:"size:20;not null;default:'open'" json:"status"`
	Assignee     string       `gorm:"size:100" json:"assignee,omitempty"`
	Notes        string       `gorm:"type:text" json:"notes,omitempty"`
}

func (CommentAction) TableName() string {
	return "comment_actions"
}
