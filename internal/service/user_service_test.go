package service

import (
	"errors"
	"testing"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
	"satisfaction_survey_backend/internal/util"
)

func TestDeleteUserRejectsSelf(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "admin", "secret123", model.Admin, nil)
	other := seedUser(t, db, "staff.reg", "secret123", model.Staff, nil)

	svc := NewUserService(repository.NewUserRepository(db))

	if err := svc.Delete(admin.ID, admin.ID); !errors.Is(err, util.ErrCannotDeleteSelf) {
		t.Errorf("self delete err = %v, want ErrCannotDeleteSelf", err)
	}
	if _, err := svc.UserRepo.FindByID(admin.ID); err != nil {
		t.Errorf("self-delete must leave the account intact: %v", err)
	}

	if err := svc.Delete(other.ID, admin.ID); err != nil {
		t.Fatalf("delete other user: %v", err)
	}
	if err := svc.Delete(9999, admin.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("unknown id err = %v, want ErrUserNotFound", err)
	}
}
