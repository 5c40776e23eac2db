package service

import (
	"errors"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"

	"gorm.io/gorm"
)

type ActionService struct {
	CommentRepo *repository.CommentRepository
	DeptRepo    *repository.DepartmentRepository
}

func NewActionService(commentRepo *repository.CommentRepository, deptRepo *repository.DepartmentRepository) *ActionService {
	return &ActionService{CommentRepo: commentRepo, DeptRepo: deptRepo}
}

type CreateActionRequest struct {
	AnswerID uint   `json:"answer_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Assignee string `json:"assignee"`
	Notes    string `json:"notes"`
}

// CreateAction promotes a free-text comment into a tracked remediation
// action. Only answers to text-type questions qualify; the department is
// taken from the owning response.
func (s *ActionService) CreateAction(req CreateActionRequest) (*model.CommentAction, error) {
	answer, err := s.CommentRepo.FindCommentAnswer(req.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActionNotFound
		}
		return nil, err
	}
	if answer.QuestionType != string(model.QuestionText) || answer.Comment == "" {
		return nil, util.ErrAnswerNotComment
	}

	action := &model.CommentAction{
		AnswerID:     answer.AnswerID,
		DepartmentID: answer.DepartmentID,
		Title:        req.Title,
		Status:       model.ActionOpen,
		Assignee:     req.Assignee,
		Notes:        req.Notes,
	}
	if err := s.CommentRepo.CreateAction(action); err != nil {
		return nil, err
	}
	return action, nil
}

type UpdateActionRequest struct {
	ID       uint    `json:"id" binding:"required"`
	Status   *string `json:"status"`
	Title    *string `json:"title"`
	Assignee *string `json:"assignee"`
	Notes    *string `json:"notes"`
}

// UpdateAction mutates status and metadata. At least one field is
// required; status may move between any of the three states in any order.
func (s *ActionService) UpdateAction(req UpdateActionRequest) (*model.CommentAction, error) {
	if req.Status == nil && req.Title == nil && req.Assignee == nil && req.Notes == nil {
		return nil, util.ErrActionNoFields
	}

	action, err := s.CommentRepo.FindActionByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActionNotFound
		}
		return nil, err
	}

	if req.Status != nil {
		status := model.ActionStatus(*req.Status)
		if !model.ValidActionStatus(status) {
			return nil, util.ErrInvalidActionStatus
		}
		action.Status = status
	}
	if req.Title != nil {
		action.Title = *req.Title
	}
	if req.Assignee != nil {
		action.Assignee = *req.Assignee
	}
	if req.Notes != nil {
		action.Notes = *req.Notes
	}

	if err := s.CommentRepo.UpdateAction(action); err != nil {
		return nil, err
	}
	return action, nil
}

func (s *ActionService) ListActions(departmentCode, status string) ([]model.CommentAction, error) {
	var departmentID *uint
	if departmentCode != "" {
		dept, err := s.DeptRepo.FindByCode(departmentCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrDepartmentNotFound
			}
			return nil, err
		}
		departmentID = &dept.ID
	}
	return s.CommentRepo.ListActions(departmentID, status)
}
