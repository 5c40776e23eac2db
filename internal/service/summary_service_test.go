package service

import (
	"errors"
	"testing"
	"time"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/util"
)

func TestGetDeptSummaryAggregates(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	other := seedDepartment(t, db, "LIB", "สำนักหอสมุด")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 2)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(5), "")
	seedAnswer(t, db, r1.ID, textQ.ID, nil, "ดีมาก")

	r2 := seedResponse(t, db, 1, dept.ID, "บุคลากร")
	seedAnswer(t, db, r2.ID, rating.ID, intPtr(3), "")
	seedAnswer(t, db, r2.ID, textQ.ID, nil, "") // empty comment must not count

	// Another department's answers must not leak into REG's aggregates.
	r3 := seedResponse(t, db, 1, other.ID, "นักศึกษา")
	seedAnswer(t, db, r3.ID, rating.ID, intPtr(1), "")

	svc := newSummaryService(db)
	summary, err := svc.GetDeptSummary("REG", 1, nil, nil)
	if err != nil {
		t.Fatalf("GetDeptSummary: %v", err)
	}

	if summary.Responses != 2 {
		t.Errorf("Responses = %d, want 2", summary.Responses)
	}
	if len(summary.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(summary.Questions))
	}

	ratingRow := summary.Questions[0]
	if ratingRow.QuestionID != rating.ID {
		t.Fatalf("questions out of order: %+v", summary.Questions)
	}
	if ratingRow.AvgRating == nil || *ratingRow.AvgRating != 4.0 {
		t.Errorf("rating avg = %v, want 4.0", ratingRow.AvgRating)
	}
	if ratingRow.AnswersCount != 2 {
		t.Errorf("rating answers = %d, want 2", ratingRow.AnswersCount)
	}
	if ratingRow.R3 != 1 || ratingRow.R5 != 1 || ratingRow.R1 != 0 {
		t.Errorf("distribution = %d/%d/%d/%d/%d", ratingRow.R1, ratingRow.R2, ratingRow.R3, ratingRow.R4, ratingRow.R5)
	}

	textRow := summary.Questions[1]
	if textRow.AvgRating != nil {
		t.Errorf("text question has avg %v", *textRow.AvgRating)
	}
	if textRow.AnswersCount != 1 {
		t.Errorf("text answers = %d, want 1 (empty comment excluded)", textRow.AnswersCount)
	}
}

func TestGetDeptSummaryUnansweredQuestionStillListed(t *testing.T) {
	db := newTestDB(t)
	seedDepartment(t, db, "REG", "สำนักทะเบียน")
	seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	svc := newSummaryService(db)
	summary, err := svc.GetDeptSummary("REG", 1, nil, nil)
	if err != nil {
		t.Fatalf("GetDeptSummary: %v", err)
	}
	if len(summary.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(summary.Questions))
	}
	q := summary.Questions[0]
	if q.AvgRating != nil || q.AnswersCount != 0 {
		t.Errorf("unanswered question: avg=%v count=%d", q.AvgRating, q.AnswersCount)
	}
}

// from == to must behave as a single-day window, not an empty one.
func TestGetDeptSummarySingleDayWindow(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	inWindow := today.Add(14 * time.Hour)
	outOfWindow := today.AddDate(0, 0, 1).Add(2 * time.Hour)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r1.ID).Update("created_at", inWindow)
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(5), "")

	r2 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r2.ID).Update("created_at", outOfWindow)
	seedAnswer(t, db, r2.ID, rating.ID, intPtr(1), "")

	svc := newSummaryService(db)
	summary, err := svc.GetDeptSummary("REG", 1, &today, &today)
	if err != nil {
		t.Fatalf("GetDeptSummary: %v", err)
	}

	if summary.Responses != 1 {
		t.Errorf("Responses = %d, want 1", summary.Responses)
	}
	q := summary.Questions[0]
	if q.AnswersCount != 1 || q.AvgRating == nil || *q.AvgRating != 5.0 {
		t.Errorf("window leaked: count=%d avg=%v", q.AnswersCount, q.AvgRating)
	}
}

func TestGetDeptYearlyStats(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 2)

	y2025 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	y2026 := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r1.ID).Update("created_at", y2025)
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(4), "")
	seedAnswer(t, db, r1.ID, textQ.ID, nil, "ดีมาก")

	r2 := seedResponse(t, db, 1, dept.ID, "บุคลากร")
	db.Model(&model.Response{}).Where("id = ?", r2.ID).Update("created_at", y2025)
	seedAnswer(t, db, r2.ID, rating.ID, intPtr(2), "")
	seedAnswer(t, db, r2.ID, textQ.ID, nil, "") // empty comment must not count

	r3 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	db.Model(&model.Response{}).Where("id = ?", r3.ID).Update("created_at", y2026)
	seedAnswer(t, db, r3.ID, rating.ID, intPtr(5), "")

	svc := newSummaryService(db)
	stats, err := svc.GetDeptYearlyStats("REG", 1)
	if err != nil {
		t.Fatalf("GetDeptYearlyStats: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("got %d years, want 2: %+v", len(stats), stats)
	}

	first := stats[0]
	if first.Year != 2025 || first.Participation != 2 {
		t.Errorf("2025 row = %+v", first)
	}
	if first.AvgRating == nil || *first.AvgRating != 3.0 {
		t.Errorf("2025 avg = %v, want 3.0", first.AvgRating)
	}
	if first.R2 != 1 || first.R4 != 1 {
		t.Errorf("2025 distribution = %d/%d/%d/%d/%d", first.R1, first.R2, first.R3, first.R4, first.R5)
	}
	if first.Comments != 1 {
		t.Errorf("2025 comments = %d, want 1 (empty comment excluded)", first.Comments)
	}

	second := stats[1]
	if second.Year != 2026 || second.Participation != 1 || second.Comments != 0 {
		t.Errorf("2026 row = %+v", second)
	}
	if second.AvgRating == nil || *second.AvgRating != 5.0 {
		t.Errorf("2026 avg = %v, want 5.0", second.AvgRating)
	}
}

func TestGetDeptYearlyStatsUnknownDepartment(t *testing.T) {
	db := newTestDB(t)
	svc := newSummaryService(db)

	_, err := svc.GetDeptYearlyStats("NOPE", 1)
	if !errors.Is(err, util.ErrDepartmentNotFound) {
		t.Fatalf("err = %v, want ErrDepartmentNotFound", err)
	}
}

func TestGetDeptSummaryUnknownDepartment(t *testing.T) {
	db := newTestDB(t)
	svc := newSummaryService(db)

	_, err := svc.GetDeptSummary("NOPE", 1, nil, nil)
	if !errors.Is(err, util.ErrDepartmentNotFound) {
		t.Fatalf("err = %v, want ErrDepartmentNotFound", err)
	}
}

func TestEndOfDayExclusive(t *testing.T) {
	if endOfDayExclusive(nil) != nil {
		t.Fatal("nil in, nil out")
	}
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	got := endOfDayExclusive(&day)
	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("endOfDayExclusive = %v, want %v", got, want)
	}
}
