package repository

import (
	"satisfaction_survey_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) ListBySurvey(surveyID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("survey_id = ?", surveyID).
		Order("`order` asc, id asc").
		Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

// CountAnswers reports how many answers reference the question.
// A nonzero count blocks deletion.
func (r *QuestionRepository) CountAnswers(id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Answer{}).Where("question_id = ?", id).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) FindSurveyByID(id uint) (*model.Survey, error) {
	var s model.Survey
	err := r.DB.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
