package model

type QuestionType string

const (
	QuestionRating QuestionType = "rating"
	QuestionText   QuestionType = "text"
)

// swagger:model Survey
type Survey struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Survey) TableName() string {
	return "surveys"
}

// swagger:model Question
type Question struct {
	BaseModel
	SurveyID uint         `gorm:"index;not null" json:"surveyId"`
	Text     string       `gorm:"type:text;not null" json:"text"`
	Type     QuestionType `gorm:"size:20;not null;default:'rating'" json:"type"`
	Order    int          `gorm:"default:0" json:"order"`
}

func (Question) TableName() string {
	return "questions"
}
