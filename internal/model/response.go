package model

// Response is one completed submission event: one respondent, one sitting.
// swagger:model Response
type Response struct {
	ImmutableModel
	SurveyID     uint   `gorm:"index;not null" json:"surveyId"`
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
	UserGroup    string `gorm:"size:50" json:"userGroup"`
}

func (Response) TableName() string {
	return "responses"
}

// Answer is one respondent's reply to one question within a Response.
// Rating is set only for rating-type questions, Comment only for text-type;
// exclusivity is an application-level contract, not a schema constraint.
// swagger:model Answer
type Answer struct {
	ImmutableModel
	ResponseID uint   `gorm:"index;not null" json:"responseId"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Rating     *int   `json:"rating,omitempty"`
	Comment    string `gorm:"type:text" json:"comment,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}
