package service

import (
	"errors"
	"testing"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"
)

func TestCreateActionFromComment(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 1)

	r := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	answer := seedAnswer(t, db, r.ID, textQ.ID, nil, "รอคิวนานมาก")

	svc := NewActionService(repository.NewCommentRepository(db), repository.NewDepartmentRepository(db))
	action, err := svc.CreateAction(CreateActionRequest{
		AnswerID: answer.ID,
		Title:    "เพิ่มจุดให้บริการช่วงเปิดเทอม",
		Assignee: "หัวหน้างานบริการ",
	})
	if err != nil {
		t.Fatalf("CreateAction: %v", err)
	}

	if action.Status != model.ActionOpen {
		t.Errorf("initial status = %q, want open", action.Status)
	}
	if action.DepartmentID != dept.ID {
		t.Errorf("department = %d, want %d (taken from the owning response)", action.DepartmentID, dept.ID)
	}
}

func TestCreateActionRejectsRatingAnswer(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	rating := seedQuestion(t, db, 1, "ความรวดเร็ว", model.QuestionRating, 1)

	r := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	answer := seedAnswer(t, db, r.ID, rating.ID, intPtr(2), "")

	svc := NewActionService(repository.NewCommentRepository(db), repository.NewDepartmentRepository(db))
	_, err := svc.CreateAction(CreateActionRequest{AnswerID: answer.ID, Title: "x"})
	if !errors.Is(err, util.ErrAnswerNotComment) {
		t.Fatalf("err = %v, want ErrAnswerNotComment", err)
	}
}

func TestCreateActionUnknownAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewActionService(repository.NewCommentRepository(db), repository.NewDepartmentRepository(db))

	_, err := svc.CreateAction(CreateActionRequest{AnswerID: 999, Title: "x"})
	if !errors.Is(err, util.ErrActionNotFound) {
		t.Fatalf("err = %v, want ErrActionNotFound", err)
	}
}

func TestUpdateAction(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 1)
	r := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	answer := seedAnswer(t, db, r.ID, textQ.ID, nil, "รอคิวนานมาก")

	svc := NewActionService(repository.NewCommentRepository(db), repository.NewDepartmentRepository(db))
	action, err := svc.CreateAction(CreateActionRequest{AnswerID: answer.ID, Title: "เพิ่มจุดให้บริการ"})
	if err != nil {
		t.Fatalf("CreateAction: %v", err)
	}

	t.Run("no fields", func(t *testing.T) {
		_, err := svc.UpdateAction(UpdateActionRequest{ID: action.ID})
		if !errors.Is(err, util.ErrActionNoFields) {
			t.Fatalf("err = %v, want ErrActionNoFields", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "cancelled"
		_, err := svc.UpdateAction(UpdateActionRequest{ID: action.ID, Status: &bad})
		if !errors.Is(err, util.ErrInvalidActionStatus) {
			t.Fatalf("err = %v, want ErrInvalidActionStatus", err)
		}
	})

	t.Run("any transition allowed", func(t *testing.T) {
		// done straight from open, then back again.
		for _, status := range []string{"done", "open", "in_progress"} {
			s := status
			updated, err := svc.UpdateAction(UpdateActionRequest{ID: action.ID, Status: &s})
			if err != nil {
				t.Fatalf("transition to %s: %v", status, err)
			}
			if string(updated.Status) != status {
				t.Errorf("status = %q, want %q", updated.Status, status)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		s := "done"
		_, err := svc.UpdateAction(UpdateActionRequest{ID: 999, Status: &s})
		if !errors.Is(err, util.ErrActionNotFound) {
			t.Fatalf("err = %v, want ErrActionNotFound", err)
		}
	})
}

func TestListActionsFilters(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	other := seedDepartment(t, db, "LIB", "สำนักหอสมุด")
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะ", model.QuestionText, 1)

	svc := NewActionService(repository.NewCommentRepository(db), repository.NewDepartmentRepository(db))

	for _, d := range []*model.Department{dept, other} {
		r := seedResponse(t, db, 1, d.ID, "นักศึกษา")
		answer := seedAnswer(t, db, r.ID, textQ.ID, nil, "ควรปรับปรุง")
		if _, err := svc.CreateAction(CreateActionRequest{AnswerID: answer.ID, Title: "ติดตาม"}); err != nil {
			t.Fatalf("CreateAction: %v", err)
		}
	}

	regOnly, err := svc.ListActions("REG", "")
	if err != nil {
		t.Fatalf("ListActions: %v", err)
	}
	if len(regOnly) != 1 || regOnly[0].DepartmentID != dept.ID {
		t.Errorf("department filter returned %+v", regOnly)
	}

	open, err := svc.ListActions("", "open")
	if err != nil {
		t.Fatalf("ListActions open: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("open filter returned %d actions, want 2", len(open))
	}

	done, err := svc.ListActions("", "done")
	if err != nil {
		t.Fatalf("ListActions done: %v", err)
	}
	if len(done) != 0 {
		t.Errorf("done filter returned %d actions, want 0", len(done))
	}

	if _, err := svc.ListActions("NOPE", ""); !errors.Is(err, util.ErrDepartmentNotFound) {
		t.Errorf("unknown department err = %v", err)
	}
}
