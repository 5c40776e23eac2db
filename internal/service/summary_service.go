package service

import (
	"errors"
	"time"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"

	"gorm.io/gorm"
)

type SummaryService struct {
	DeptRepo      *repository.DepartmentRepository
	ResponseRepo  *repository.ResponseRepository
	AnalyticsRepo *repository.AnalyticsRepository
}

func NewSummaryService(deptRepo *repository.DepartmentRepository, responseRepo *repository.ResponseRepository, analyticsRepo *repository.AnalyticsRepository) *SummaryService {
	return &SummaryService{DeptRepo: deptRepo, ResponseRepo: responseRepo, AnalyticsRepo: analyticsRepo}
}

// endOfDayExclusive converts an inclusive "to" date into the exclusive
// upper bound of the following midnight.
func endOfDayExclusive(to *time.Time) *time.Time {
	if to == nil {
		return nil
	}
	end := to.AddDate(0, 0, 1)
	return &end
}

// GetDeptSummary computes per-question aggregates for one department.
// The window is inclusive on from and inclusive-to-end-of-day on to.
// An unknown code yields ErrDepartmentNotFound, never a panic.
func (s *SummaryService) GetDeptSummary(code string, surveyID uint, from, to *time.Time) (*model.DeptSummary, error) {
	dept, err := s.DeptRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	upper := endOfDayExclusive(to)

	rows, err := s.AnalyticsRepo.DeptSummary(dept.ID, surveyID, from, upper)
	if err != nil {
		return nil, err
	}

	responses, err := s.ResponseRepo.CountInWindow(dept.ID, surveyID, from, upper)
	if err != nil {
		return nil, err
	}

	questions := make([]model.QuestionSummary, 0, len(rows))
	for _, row := range rows {
		q := model.QuestionSummary{
			QuestionID:   row.QuestionID,
			Text:         row.Text,
			Type:         model.QuestionType(row.Type),
			AnswersCount: row.AnswersCount,
			R1:           row.R1,
			R2:           row.R2,
			R3:           row.R3,
			R4:           row.R4,
			R5:           row.R5,
		}
		if q.Type == model.QuestionRating {
			q.AvgRating = row.AvgRating
		}
		questions = append(questions, q)
	}

	return &model.DeptSummary{
		DepartmentCode: dept.Code,
		DepartmentName: dept.Name,
		SurveyID:       surveyID,
		From:           from,
		To:             to,
		Responses:      responses,
		Questions:      questions,
	}, nil
}

// GetDeptYearlyStats buckets the same metrics by calendar year and
// reports distinct-response participation per year.
func (s *SummaryService) GetDeptYearlyStats(code string, surveyID uint) ([]model.YearlyStat, error) {
	dept, err := s.DeptRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}

	rows, err := s.AnalyticsRepo.YearlyStats(dept.ID, surveyID)
	if err != nil {
		return nil, err
	}

	stats := make([]model.YearlyStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, model.YearlyStat{
			Year:          row.Year,
			Participation: row.Participation,
			AvgRating:     row.AvgRating,
			R1:            row.R1,
			R2:            row.R2,
			R3:            row.R3,
			R4:            row.R4,
			R5:            row.R5,
			Comments:      row.Comments,
		})
	}
	return stats, nil
}
