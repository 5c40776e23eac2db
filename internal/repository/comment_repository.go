package repository

import (
	"strings"
	"time"

	"satisfaction_survey_backend/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

type CommentSearchFilter struct {
	SurveyID       uint
	DepartmentCode string
	Query          string
	Limit          int
}

// CommentQueryRow is the raw search row before sentiment/theme decoration.
type CommentQueryRow struct {
	AnswerID       uint      `gorm:"column:answer_id"`
	ResponseID     uint      `gorm:"column:response_id"`
	QuestionID     uint      `gorm:"column:question_id"`
	QuestionText   string    `gorm:"column:question_text"`
	DepartmentCode string    `gorm:"column:department_code"`
	DepartmentName string    `gorm:"column:department_name"`
	UserGroup      string    `gorm:"column:user_group"`
	Comment        string    `gorm:"column:comment"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

// Search joins answers to their response, question and department,
// restricted to text-type questions with non-empty comments, newest first.
// Substring matching is case-folded on both the comment and question text.
func (r *CommentRepository) Search(f CommentSearchFilter) ([]CommentQueryRow, error) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(`
		SELECT a.id AS answer_id, a.response_id, a.question_id,
		       q.text AS question_text,
		       d.code AS department_code, d.name AS department_name,
		       r.user_group, a.comment, r.created_at
		FROM answers a
		JOIN responses r ON r.id = a.response_id
		JOIN questions q ON q.id = a.question_id AND q.deleted_at IS NULL
		JOIN departments d ON d.id = r.department_id AND d.deleted_at IS NULL
		WHERE q.type = 'text' AND a.comment IS NOT NULL AND a.comment <> ''
		  AND r.survey_id = ?`)
	args = append(args, f.SurveyID)

	if f.DepartmentCode != "" {
		sb.WriteString(" AND d.code = ?")
		args = append(args, f.DepartmentCode)
	}
	if f.Query != "" {
		sb.WriteString(" AND (LOWER(a.comment) LIKE ? OR LOWER(q.text) LIKE ?)")
		pattern := "%" + strings.ToLower(f.Query) + "%"
		args = append(args, pattern, pattern)
	}

	sb.WriteString(" ORDER BY r.created_at DESC, a.id DESC LIMIT ?")
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)

	var rows []CommentQueryRow
	err := r.DB.Raw(sb.String(), args...).Scan(&rows).Error
	return rows, err
}

func (r *CommentRepository) CreateAction(a *model.CommentAction) error {
	return r.DB.Create(a).Error
}

func (r *CommentRepository) FindActionByID(id uint) (*model.CommentAction, error) {
	var a model.CommentAction
	err := r.DB.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *CommentRepository) UpdateAction(a *model.CommentAction) error {
	return r.DB.Save(a).Error
}

func (r *CommentRepository) ListActions(departmentID *uint, status string) ([]model.CommentAction, error) {
	query := r.DB.Model(&model.CommentAction{})
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var actions []model.CommentAction
	err := query.Order("updated_at desc").Find(&actions).Error
	return actions, err
}

// FindCommentAnswer resolves a text answer together with its question type
// and the department of the owning response.
type CommentAnswer struct {
	AnswerID     uint   `gorm:"column:answer_id"`
	DepartmentID uint   `gorm:"column:department_id"`
	QuestionType string `gorm:"column:question_type"`
	Comment      string `gorm:"column:comment"`
}

func (r *CommentRepository) FindCommentAnswer(answerID uint) (*CommentAnswer, error) {
	var row CommentAnswer
	err := r.DB.Raw(`
		SELECT a.id AS answer_id, r.department_id, q.type AS question_type, a.comment
		FROM answers a
		JOIN responses r ON r.id = a.response_id
		JOIN questions q ON q.id = a.question_id
		WHERE a.id = ?`, answerID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.AnswerID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
