package repository

import (
	"strings"
	"time"

	"satisfaction_survey_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// QuestionAggRow is one per-question aggregate for a department summary.
type QuestionAggRow struct {
	QuestionID   uint     `gorm:"column:question_id"`
	Text         string   `gorm:"column:text"`
	Type         string   `gorm:"column:type"`
	AvgRating    *float64 `gorm:"column:avg_rating"`
	AnswersCount int64    `gorm:"column:answers_count"`
	R1           int64    `gorm:"column:r1"`
	R2           int64    `gorm:"column:r2"`
	R3           int64    `gorm:"column:r3"`
	R4           int64    `gorm:"column:r4"`
	R5           int64    `gorm:"column:r5"`
}

// DeptSummary aggregates every question of the survey for one department.
// Answers are scoped to the department and optional window in a derived
// table, so the outer LEFT JOIN keeps unanswered questions in the result
// with zero counts and a NULL average.
func (r *AnalyticsRepository) DeptSummary(departmentID, surveyID uint, from, to *time.Time) ([]QuestionAggRow, error) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString(`
		SELECT a.id, a.question_id, a.rating, a.comment
		FROM answers a
		JOIN responses r ON r.id = a.response_id
		WHERE r.department_id = ? AND r.survey_id = ?`)
	args = append(args, departmentID, surveyID)
	if from != nil {
		sb.WriteString(" AND r.created_at >= ?")
		args = append(args, *from)
	}
	if to != nil {
		sb.WriteString(" AND r.created_at < ?")
		args = append(args, *to)
	}
	scoped := sb.String()

	sql := `
		SELECT q.id AS question_id, q.text, q.type,
		       AVG(CASE WHEN q.type = 'rating' THEN a.rating END) AS avg_rating,
		       CASE WHEN q.type = 'rating' THEN COUNT(a.id)
		            ELSE COALESCE(SUM(CASE WHEN a.comment IS NOT NULL AND a.comment <> '' THEN 1 ELSE 0 END), 0)
		       END AS answers_count,
		       COALESCE(SUM(CASE WHEN a.rating = 1 THEN 1 ELSE 0 END), 0) AS r1,
		       COALESCE(SUM(CASE WHEN a.rating = 2 THEN 1 ELSE 0 END), 0) AS r2,
		       COALESCE(SUM(CASE WHEN a.rating = 3 THEN 1 ELSE 0 END), 0) AS r3,
		       COALESCE(SUM(CASE WHEN a.rating = 4 THEN 1 ELSE 0 END), 0) AS r4,
		       COALESCE(SUM(CASE WHEN a.rating = 5 THEN 1 ELSE 0 END), 0) AS r5
		FROM questions q
		LEFT JOIN (` + scoped + `) a ON a.question_id = q.id
		WHERE q.survey_id = ? AND q.deleted_at IS NULL
		GROUP BY q.id, q.text, q.type, q.` + "`order`" + `
		ORDER BY q.` + "`order`" + ` asc, q.id asc`
	args = append(args, surveyID)

	var rows []QuestionAggRow
	err := r.DB.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

// yearExpr extracts the calendar year from a response timestamp in the
// connected dialect. sqlite has no YEAR(); MySQL has no strftime().
func (r *AnalyticsRepository) yearExpr() string {
	if r.DB.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', r.created_at) AS INTEGER)"
	}
	return "YEAR(r.created_at)"
}

// bucketExpr formats a response timestamp with a %Y-%m style pattern
// bound as the first query argument. The pattern syntax is shared by
// MySQL DATE_FORMAT and sqlite strftime.
func (r *AnalyticsRepository) bucketExpr() string {
	if r.DB.Dialector.Name() == "sqlite" {
		return "strftime(?, r.created_at)"
	}
	return "DATE_FORMAT(r.created_at, ?)"
}

type YearlyAggRow struct {
	Year          int      `gorm:"column:year"`
	Participation int64    `gorm:"column:participation"`
	AvgRating     *float64 `gorm:"column:avg_rating"`
	R1            int64    `gorm:"column:r1"`
	R2            int64    `gorm:"column:r2"`
	R3            int64    `gorm:"column:r3"`
	R4            int64    `gorm:"column:r4"`
	R5            int64    `gorm:"column:r5"`
	Comments      int64    `gorm:"column:comments"`
}

func (r *AnalyticsRepository) YearlyStats(departmentID, surveyID uint) ([]YearlyAggRow, error) {
	var rows []YearlyAggRow
	err := r.DB.Raw(`
		SELECT `+r.yearExpr()+` AS year,
		       COUNT(DISTINCT r.id) AS participation,
		       AVG(a.rating) AS avg_rating,
		       COALESCE(SUM(CASE WHEN a.rating = 1 THEN 1 ELSE 0 END), 0) AS r1,
		       COALESCE(SUM(CASE WHEN a.rating = 2 THEN 1 ELSE 0 END), 0) AS r2,
		       COALESCE(SUM(CASE WHEN a.rating = 3 THEN 1 ELSE 0 END), 0) AS r3,
		       COALESCE(SUM(CASE WHEN a.rating = 4 THEN 1 ELSE 0 END), 0) AS r4,
		       COALESCE(SUM(CASE WHEN a.rating = 5 THEN 1 ELSE 0 END), 0) AS r5,
		       COALESCE(SUM(CASE WHEN a.comment IS NOT NULL AND a.comment <> '' THEN 1 ELSE 0 END), 0) AS comments
		FROM responses r
		LEFT JOIN answers a ON a.response_id = r.id
		WHERE r.department_id = ? AND r.survey_id = ?
		GROUP BY year
		ORDER BY year asc`, departmentID, surveyID).Scan(&rows).Error
	return rows, err
}

// responseJoin builds the LEFT JOIN ... ON condition for responses under
// the executive filter. Every response-level restriction lives in the ON
// clause: a WHERE filter after the outer join would quietly turn it into
// an inner join and drop zero-response departments from the result.
func responseJoin(f model.ExecFilter, args *[]interface{}) string {
	var sb strings.Builder
	sb.WriteString("r.department_id = d.id AND r.survey_id = ?")
	*args = append(*args, f.SurveyID)
	if f.From != nil {
		sb.WriteString(" AND r.created_at >= ?")
		*args = append(*args, *f.From)
	}
	if f.To != nil {
		sb.WriteString(" AND r.created_at < ?")
		*args = append(*args, *f.To)
	}
	if len(f.UserGroups) > 0 {
		sb.WriteString(" AND r.user_group IN (?)")
		*args = append(*args, f.UserGroups)
	}
	return sb.String()
}

func answerJoin(f model.ExecFilter, args *[]interface{}) string {
	var sb strings.Builder
	sb.WriteString("a.response_id = r.id AND a.rating IS NOT NULL")
	if f.RatingMin != nil {
		sb.WriteString(" AND a.rating >= ?")
		*args = append(*args, *f.RatingMin)
	}
	if f.RatingMax != nil {
		sb.WriteString(" AND a.rating <= ?")
		*args = append(*args, *f.RatingMax)
	}
	return sb.String()
}

func departmentWhere(f model.ExecFilter, args *[]interface{}) string {
	where := "d.deleted_at IS NULL"
	if len(f.Departments) > 0 {
		where += " AND d.code IN (?)"
		*args = append(*args, f.Departments)
	}
	return where
}

type RankAggRow struct {
	DepartmentID uint     `gorm:"column:department_id"`
	Code         string   `gorm:"column:code"`
	Name         string   `gorm:"column:name"`
	Score        *float64 `gorm:"column:score"`
	Answers      int64    `gorm:"column:answers"`
	Responses    int64    `gorm:"column:responses"`
}

// Rank orders departments by average rating. Ties break on answer count,
// then name, so the ordering is deterministic. NULL scores sort last.
func (r *AnalyticsRepository) Rank(f model.ExecFilter) ([]RankAggRow, error) {
	var args []interface{}
	respOn := responseJoin(f, &args)
	ansOn := answerJoin(f, &args)
	where := departmentWhere(f, &args)

	sql := `
		SELECT d.id AS department_id, d.code, d.name,
		       AVG(a.rating) AS score,
		       COUNT(a.id) AS answers,
		       COUNT(DISTINCT r.id) AS responses
		FROM departments d
		LEFT JOIN responses r ON ` + respOn + `
		LEFT JOIN answers a ON ` + ansOn + `
		WHERE ` + where + `
		GROUP BY d.id, d.code, d.name
		ORDER BY score IS NULL asc, score desc, answers desc, d.name asc`

	var rows []RankAggRow
	err := r.DB.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

type HeatmapAggRow struct {
	DepartmentCode string   `gorm:"column:department_code"`
	DepartmentName string   `gorm:"column:department_name"`
	QuestionID     uint     `gorm:"column:question_id"`
	QuestionText   string   `gorm:"column:question_text"`
	AvgRating      *float64 `gorm:"column:avg_rating"`
	Answers        int64    `gorm:"column:answers"`
}

// Heatmap produces one row per department x rating question. The question
// join is an inner join by necessity, applied after the outer joins so a
// department without responses still yields a full row of empty cells.
func (r *AnalyticsRepository) Heatmap(f model.ExecFilter) ([]HeatmapAggRow, error) {
	var args []interface{}
	args = append(args, f.SurveyID)
	respOn := responseJoin(f, &args)
	ansOn := answerJoin(f, &args) + " AND a.question_id = q.id"
	where := departmentWhere(f, &args)

	sql := `
		SELECT d.code AS department_code, d.name AS department_name,
		       q.id AS question_id, q.text AS question_text,
		       AVG(a.rating) AS avg_rating,
		       COUNT(a.id) AS answers
		FROM departments d
		JOIN questions q ON q.survey_id = ? AND q.type = 'rating' AND q.deleted_at IS NULL
		LEFT JOIN responses r ON ` + respOn + `
		LEFT JOIN answers a ON ` + ansOn + `
		WHERE ` + where + `
		GROUP BY d.code, d.name, q.id, q.text, q.` + "`order`" + `
		ORDER BY d.name asc, q.` + "`order`" + ` asc, q.id asc`

	var rows []HeatmapAggRow
	err := r.DB.Raw(sql, args...).Scan(&rows).Error
	return rows, err
}

type TrendAggRow struct {
	Bucket    string   `gorm:"column:bucket"`
	Responses int64    `gorm:"column:responses"`
	AvgRating *float64 `gorm:"column:avg_rating"`
}

// Trend buckets submissions by day or month. Missing buckets are filled
// in by the service layer, not here.
func (r *AnalyticsRepository) Trend(f model.ExecFilter) ([]TrendAggRow, error) {
	format := "%Y-%m"
	if f.Group == "day" {
		format = "%Y-%m-%d"
	}

	var sb strings.Builder
	var args []interface{}
	args = append(args, format)

	sb.WriteString(`
		SELECT ` + r.bucketExpr() + ` AS bucket,
		       COUNT(DISTINCT r.id) AS responses,
		       AVG(a.rating) AS avg_rating
		FROM responses r
		JOIN departments d ON d.id = r.department_id AND d.deleted_at IS NULL`)
	if len(f.Departments) > 0 {
		sb.WriteString(" AND d.code IN (?)")
		args = append(args, f.Departments)
	}

	ansOn := answerJoin(f, &args)
	sb.WriteString(" LEFT JOIN answers a ON " + ansOn)

	sb.WriteString(" WHERE r.survey_id = ?")
	args = append(args, f.SurveyID)
	if f.From != nil {
		sb.WriteString(" AND r.created_at >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		sb.WriteString(" AND r.created_at < ?")
		args = append(args, *f.To)
	}
	if len(f.UserGroups) > 0 {
		sb.WriteString(" AND r.user_group IN (?)")
		args = append(args, f.UserGroups)
	}

	sb.WriteString(" GROUP BY bucket ORDER BY bucket asc")

	var rows []TrendAggRow
	err := r.DB.Raw(sb.String(), args...).Scan(&rows).Error
	return rows, err
}
