package repository

import (
	"time"

	"satisfaction_survey_backend/internal/model"

	"gorm.io/gorm"
)

// ResponseRepository covers read paths over the append-only response
// table. Writes happen only inside the submission transaction, directly
// on the transaction handle.
type ResponseRepository struct {
	DB *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{DB: db}
}

// CountInWindow counts distinct submissions for a department within the
// optional half-open [from, to) window.
func (r *ResponseRepository) CountInWindow(departmentID, surveyID uint, from, to *time.Time) (int64, error) {
	query := r.DB.Model(&model.Response{}).
		Where("department_id = ? AND survey_id = ?", departmentID, surveyID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at < ?", *to)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
