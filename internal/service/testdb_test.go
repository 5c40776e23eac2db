package service

import (
	"testing"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema.
// The pool is capped at one connection so every query sees the same
// in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Survey{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
		&model.CommentAction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedDepartment(t *testing.T, db *gorm.DB, code, name string) *model.Department {
	t.Helper()
	dept := &model.Department{Code: code, Name: name}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("seed department %s: %v", code, err)
	}
	return dept
}

func seedQuestion(t *testing.T, db *gorm.DB, surveyID uint, text string, qType model.QuestionType, order int) *model.Question {
	t.Helper()
	q := &model.Question{SurveyID: surveyID, Text: text, Type: qType, Order: order}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question %q: %v", text, err)
	}
	return q
}

func seedResponse(t *testing.T, db *gorm.DB, surveyID, deptID uint, userGroup string) *model.Response {
	t.Helper()
	r := &model.Response{SurveyID: surveyID, DepartmentID: deptID, UserGroup: userGroup}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed response: %v", err)
	}
	return r
}

func seedAnswer(t *testing.T, db *gorm.DB, responseID, questionID uint, rating *int, comment string) *model.Answer {
	t.Helper()
	a := &model.Answer{ResponseID: responseID, QuestionID: questionID, Rating: rating, Comment: comment}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed answer: %v", err)
	}
	return a
}

func intPtr(v int) *int { return &v }

func newSubmissionService(db *gorm.DB) *SubmissionService {
	return NewSubmissionService(repository.NewDepartmentRepository(db), db)
}

func newSummaryService(db *gorm.DB) *SummaryService {
	return NewSummaryService(repository.NewDepartmentRepository(db), repository.NewResponseRepository(db), repository.NewAnalyticsRepository(db))
}
