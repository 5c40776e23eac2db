package service

import (
	"errors"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"
	"satisfaction_survey_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type SubmissionService struct {
	DeptRepo *repository.DepartmentRepository
	DB       *gorm.DB
}

func NewSubmissionService(deptRepo *repository.DepartmentRepository, db *gorm.DB) *SubmissionService {
	return &SubmissionService{DeptRepo: deptRepo, DB: db}
}

type SubmitAnswer struct {
	QuestionID uint   `json:"question_id"`
	Rating     *int   `json:"rating,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type SubmitRequest struct {
	SurveyID       uint           `json:"survey_id"`
	DepartmentCode string         `json:"department_code" binding:"required"`
	UserGroup      string         `json:"user_group"`
	Answers        []SubmitAnswer `json:"answers" binding:"required"`
}

// Submit persists one response and all of its answers as a single
// transaction. Any malformed answer rolls the whole submission back, so
// partial responses are never visible to readers. Completeness of the
// rating set is not checked here; the survey page enforces it.
func (s *SubmissionService) Submit(req SubmitRequest) error {
	dept, err := s.DeptRepo.FindByCode(req.DepartmentCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrDepartmentNotFound
		}
		return err
	}

	if len(req.Answers) == 0 {
		return util.ErrMalformedAnswer
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		response := model.Response{
			SurveyID:     req.SurveyID,
			DepartmentID: dept.ID,
			UserGroup:    req.UserGroup,
		}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		for _, a := range req.Answers {
			if a.QuestionID == 0 {
				return util.ErrMalformedAnswer
			}
			if a.Rating != nil && (*a.Rating < 1 || *a.Rating > 5) {
				return util.ErrMalformedAnswer
			}
			answer := model.Answer{
				ResponseID: response.ID,
				QuestionID: a.QuestionID,
				Rating:     a.Rating,
				Comment:    a.Comment,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	monitoring.ResponsesSubmitted.Inc()
	return nil
}
