package service

import (
	"time"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
)

type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{AnalyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) GetRank(f model.ExecFilter) ([]model.RankRow, error) {
	f.To = endOfDayExclusive(f.To)
	rows, err := s.AnalyticsRepo.Rank(f)
	if err != nil {
		return nil, err
	}

	out := make([]model.RankRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.RankRow{
			DepartmentID: row.DepartmentID,
			Code:         row.Code,
			Name:         row.Name,
			Score:        row.Score,
			Answers:      row.Answers,
			Responses:    row.Responses,
		})
	}
	return out, nil
}

func (s *AnalyticsService) GetHeatmap(f model.ExecFilter) ([]model.HeatmapCell, error) {
	f.To = endOfDayExclusive(f.To)
	rows, err := s.AnalyticsRepo.Heatmap(f)
	if err != nil {
		return nil, err
	}

	out := make([]model.HeatmapCell, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.HeatmapCell{
			DepartmentCode: row.DepartmentCode,
			DepartmentName: row.DepartmentName,
			QuestionID:     row.QuestionID,
			QuestionText:   row.QuestionText,
			AvgRating:      row.AvgRating,
			Answers:        row.Answers,
		})
	}
	return out, nil
}

// GetTrend returns a day- or month-bucketed series. Buckets inside the
// requested window with no submissions are filled with zero metrics so
// the series has no holes for the charts to trip over.
func (s *AnalyticsService) GetTrend(f model.ExecFilter) ([]model.TrendPoint, error) {
	if f.Group != "day" {
		f.Group = "month"
	}

	// Default window: last 30 days for daily series, last 12 months for
	// monthly, anchored at today.
	now := time.Now()
	if f.To == nil {
		t := now
		f.To = &t
	}
	if f.From == nil {
		var from time.Time
		if f.Group == "day" {
			from = f.To.AddDate(0, 0, -29)
		} else {
			from = f.To.AddDate(0, -11, 0)
		}
		f.From = &from
	}

	queryFilter := f
	queryFilter.To = endOfDayExclusive(f.To)

	rows, err := s.AnalyticsRepo.Trend(queryFilter)
	if err != nil {
		return nil, err
	}

	byBucket := make(map[string]repository.TrendAggRow, len(rows))
	for _, row := range rows {
		byBucket[row.Bucket] = row
	}

	var out []model.TrendPoint
	for _, bucket := range enumerateBuckets(*f.From, *f.To, f.Group) {
		if row, ok := byBucket[bucket]; ok {
			out = append(out, model.TrendPoint{
				Bucket:    bucket,
				Responses: row.Responses,
				AvgRating: row.AvgRating,
			})
		} else {
			out = append(out, model.TrendPoint{Bucket: bucket})
		}
	}
	return out, nil
}

func enumerateBuckets(from, to time.Time, group string) []string {
	var buckets []string
	if group == "day" {
		for t := from; !t.After(to); t = t.AddDate(0, 0, 1) {
			buckets = append(buckets, t.Format("2006-01-02"))
		}
		return buckets
	}

	start := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, to.Location())
	for t := start; !t.After(end); t = t.AddDate(0, 1, 0) {
		buckets = append(buckets, t.Format("2006-01"))
	}
	return buckets
}
