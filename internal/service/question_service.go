package service

import (
	"errors"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

func (s *QuestionService) ListBySurvey(surveyID uint) ([]model.Question, error) {
	return s.QuestionRepo.ListBySurvey(surveyID)
}

type QuestionRequest struct {
	SurveyID uint   `json:"survey_id"`
	Text     string `json:"text" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=rating text"`
	Order    int    `json:"order"`
}

func (s *QuestionService) Create(req QuestionRequest) (*model.Question, error) {
	q := &model.Question{
		SurveyID: req.SurveyID,
		Text:     req.Text,
		Type:     model.QuestionType(req.Type),
		Order:    req.Order,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Update(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	q.Text = req.Text
	q.Type = model.QuestionType(req.Type)
	q.Order = req.Order
	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Delete refuses to remove a question that already has answers; historic
// aggregates must keep resolving their question text.
func (s *QuestionService) Delete(id uint) error {
	if _, err := s.QuestionRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}

	count, err := s.QuestionRepo.CountAnswers(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrQuestionHasAnswers
	}
	return s.QuestionRepo.Delete(id)
}
