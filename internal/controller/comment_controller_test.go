package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newCommentSearchRouter seeds one text comment per department and
// mounts the search handler behind a claims-injecting stub.
func newCommentSearchRouter(t *testing.T, claims *util.Claims) *gin.Engine {
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
		&model.Department{},
		&model.Survey{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
		&model.CommentAction{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	reg := &model.Department{Code: "REG", Name: "สำนักทะเบียน"}
	lib := &model.Department{Code: "LIB", Name: "สำนักหอสมุด"}
	textQ := &model.Question{SurveyID: 1, Text: "ข้อเสนอแนะ", Type: model.QuestionText, Order: 1}
	for _, row := range []interface{}{reg, lib, textQ} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	for _, seed := range []struct {
		deptID  uint
		comment string
	}{
		{reg.ID, "เจ้าหน้าที่สุภาพมาก"},
		{lib.ID, "รอนานมาก"},
	} {
		resp := &model.Response{SurveyID: 1, DepartmentID: seed.deptID, UserGroup: "นักศึกษา"}
		if err := db.Create(resp).Error; err != nil {
			t.Fatalf("seed response: %v", err)
		}
		answer := &model.Answer{ResponseID: resp.ID, QuestionID: textQ.ID, Comment: seed.comment}
		if err := db.Create(answer).Error; err != nil {
			t.Fatalf("seed answer: %v", err)
		}
	}

	cfg := &config.Config{}
	cfg.Survey.ActiveSurveyID = 1

	commentRepo := repository.NewCommentRepository(db)
	ctrl := NewCommentController(
		service.NewSentimentService(commentRepo),
		service.NewActionService(commentRepo, repository.NewDepartmentRepository(db)),
		cfg,
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/comments/search", func(c *gin.Context) { c.Set("user", claims) }, ctrl.Search)
	return r
}

func searchComments(t *testing.T, router *gin.Engine, query string) (int, []model.CommentRow) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/comments/search"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var rows []model.CommentRow
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
			t.Fatalf("decode body %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, rows
}

func TestSearchFiltersByDepartmentCodeParam(t *testing.T) {
	exec := &util.Claims{UserID: 1, Username: "exec", Role: model.Exec}
	router := newCommentSearchRouter(t, exec)

	code, rows := searchComments(t, router, "?department_code=REG")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(rows) != 1 || rows[0].DepartmentCode != "REG" {
		t.Errorf("rows = %+v, want only REG", rows)
	}

	// The short form still filters the same way.
	code, rows = searchComments(t, router, "?department=LIB")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(rows) != 1 || rows[0].DepartmentCode != "LIB" {
		t.Errorf("rows = %+v, want only LIB", rows)
	}
}

func TestSearchScopesStaffToOwnDepartment(t *testing.T) {
	staff := &util.Claims{UserID: 2, Username: "staff.lib", Role: model.Staff, DepartmentCode: "LIB"}
	router := newCommentSearchRouter(t, staff)

	code, _ := searchComments(t, router, "?department_code=REG")
	if code != http.StatusForbidden {
		t.Errorf("cross-department status = %d, want 403", code)
	}

	code, rows := searchComments(t, router, "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(rows) != 1 || rows[0].DepartmentCode != "LIB" {
		t.Errorf("rows = %+v, want pinned to LIB", rows)
	}
}
