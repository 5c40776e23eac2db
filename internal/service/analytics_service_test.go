package service

import (
	"testing"
	"time"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
)

func TestGetRankKeepsZeroResponseDepartments(t *testing.T) {
	db := newTestDB(t)
	busy := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	quiet := seedDepartment(t, db, "LIB", "สำนักหอสมุด")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	r1 := seedResponse(t, db, 1, busy.ID, "นักศึกษา")
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(4), "")

	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))
	rows, err := svc.GetRank(model.ExecFilter{SurveyID: 1})
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (zero-response department dropped)", len(rows))
	}

	if rows[0].DepartmentID != busy.ID {
		t.Errorf("first row = %s, want scored department first", rows[0].Code)
	}
	if rows[0].Score == nil || *rows[0].Score != 4.0 {
		t.Errorf("score = %v, want 4.0", rows[0].Score)
	}

	last := rows[1]
	if last.DepartmentID != quiet.ID {
		t.Fatalf("zero-response department missing from tail: %+v", rows)
	}
	if last.Score != nil {
		t.Errorf("zero-response score = %v, want nil", *last.Score)
	}
	if last.Answers != 0 || last.Responses != 0 {
		t.Errorf("zero-response counts = %d/%d", last.Answers, last.Responses)
	}
}

func TestGetRankUserGroupFilterPreservesDepartments(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(2), "")

	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))

	// No response matches the group filter, yet the department stays.
	rows, err := svc.GetRank(model.ExecFilter{SurveyID: 1, UserGroups: []string{"บุคลากร"}})
	if err != nil {
		t.Fatalf("GetRank: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Score != nil || rows[0].Responses != 0 {
		t.Errorf("filtered-out department should read empty, got %+v", rows[0])
	}
}

func TestGetHeatmapFullGrid(t *testing.T) {
	db := newTestDB(t)
	seedDepartment(t, db, "REG", "สำนักทะเบียน")
	seedDepartment(t, db, "LIB", "สำนักหอสมุด")
	seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)
	seedQuestion(t, db, 1, "ความสุภาพ", model.QuestionRating, 2)
	seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 3)

	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))
	cells, err := svc.GetHeatmap(model.ExecFilter{SurveyID: 1})
	if err != nil {
		t.Fatalf("GetHeatmap: %v", err)
	}

	// 2 departments x 2 rating questions; the text question is excluded.
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	for _, cell := range cells {
		if cell.AvgRating != nil {
			t.Errorf("empty grid cell has avg %v", *cell.AvgRating)
		}
	}
}

func TestGetTrendDayBucketsWithZeroFill(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	day1 := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	day3 := time.Date(2026, 3, 12, 12, 0, 0, 0, time.Local)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r1.ID).Update("created_at", day1)
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(4), "")

	r2 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r2.ID).Update("created_at", day1)
	seedAnswer(t, db, r2.ID, rating.ID, intPtr(2), "")

	r3 := seedResponse(t, db, 1, dept.ID, "บุคลากร")
	db.Model(&model.Response{}).Where("id = ?", r3.ID).Update("created_at", day3)
	seedAnswer(t, db, r3.ID, rating.ID, intPtr(5), "")

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)

	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))
	points, err := svc.GetTrend(model.ExecFilter{SurveyID: 1, Group: "day", From: &from, To: &to})
	if err != nil {
		t.Fatalf("GetTrend: %v", err)
	}

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3: %+v", len(points), points)
	}

	first := points[0]
	if first.Bucket != "2026-03-10" || first.Responses != 2 {
		t.Errorf("first point = %+v", first)
	}
	if first.AvgRating == nil || *first.AvgRating != 3.0 {
		t.Errorf("first avg = %v, want 3.0", first.AvgRating)
	}

	// The quiet middle day must still appear with zero metrics.
	middle := points[1]
	if middle.Bucket != "2026-03-11" || middle.Responses != 0 || middle.AvgRating != nil {
		t.Errorf("middle point = %+v", middle)
	}

	last := points[2]
	if last.Bucket != "2026-03-12" || last.Responses != 1 {
		t.Errorf("last point = %+v", last)
	}
	if last.AvgRating == nil || *last.AvgRating != 5.0 {
		t.Errorf("last avg = %v, want 5.0", last.AvgRating)
	}
}

func TestGetTrendUserGroupFilter(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r1.ID).Update("created_at", day)
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(4), "")

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	svc := NewAnalyticsService(repository.NewAnalyticsRepository(db))

	points, err := svc.GetTrend(model.ExecFilter{SurveyID: 1, Group: "day", From: &from, To: &from, UserGroups: []string{"บุคลากร"}})
	if err != nil {
		t.Fatalf("GetTrend: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].Responses != 0 || points[0].AvgRating != nil {
		t.Errorf("filtered-out day should read empty, got %+v", points[0])
	}
}

func TestEnumerateBuckets(t *testing.T) {
	tests := []struct {
		name  string
		from  time.Time
		to    time.Time
		group string
		want  []string
	}{
		{
			"three days",
			time.Date(2026, 2, 27, 10, 0, 0, 0, time.Local),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
			"day",
			[]string{"2026-02-27", "2026-02-28", "2026-03-01"},
		},
		{
			"single day",
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local),
			"day",
			[]string{"2026-03-10"},
		},
		{
			"months across year boundary",
			time.Date(2025, 11, 15, 0, 0, 0, 0, time.Local),
			time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local),
			"month",
			[]string{"2025-11", "2025-12", "2026-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enumerateBuckets(tt.from, tt.to, tt.group)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("bucket[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
