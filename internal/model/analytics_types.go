package model

import "time"

// QuestionSummary carries per-question aggregates for one department.
// AvgRating is nil for text questions and for rating questions with no
// numeric answers. For text questions AnswersCount counts non-empty
// comments only; for rating questions it counts all answer rows.
type QuestionSummary struct {
	QuestionID   uint         `json:"questionId"`
	Text         string       `json:"text"`
	Type         QuestionType `json:"type"`
	AvgRating    *float64     `json:"avgRating"`
	AnswersCount int64        `json:"answersCount"`
	R1           int64        `json:"r1"`
	R2           int64        `json:"r2"`
	R3           int64        `json:"r3"`
	R4           int64        `json:"r4"`
	R5           int64        `json:"r5"`
}

type DeptSummary struct {
	DepartmentCode string            `json:"departmentCode"`
	DepartmentName string            `json:"departmentName"`
	SurveyID       uint              `json:"surveyId"`
	From           *time.Time        `json:"from,omitempty"`
	To             *time.Time        `json:"to,omitempty"`
	Responses      int64             `json:"responses"`
	Questions      []QuestionSummary `json:"questions"`
}

// YearlyStat buckets the same metrics by calendar year.
// Participation counts distinct responses, not answer rows.
type YearlyStat struct {
	Year          int      `json:"year"`
	Participation int64    `json:"participation"`
	AvgRating     *float64 `json:"avgRating"`
	R1            int64    `json:"r1"`
	R2            int64    `json:"r2"`
	R3            int64    `json:"r3"`
	R4            int64    `json:"r4"`
	R5            int64    `json:"r5"`
	Comments      int64    `json:"comments"`
}

// ExecFilter is the shared filter for rank, heatmap and trend queries.
type ExecFilter struct {
	SurveyID    uint
	From        *time.Time
	To          *time.Time
	UserGroups  []string
	Departments []string
	RatingMin   *int
	RatingMax   *int
	Group       string // "day" or "month", trend only
}

// RankRow is one department's aggregate standing. Score stays nil when no
// answer matched the filter window, so zero-response departments remain
// visible instead of silently dropping out.
type RankRow struct {
	DepartmentID uint     `json:"departmentId"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Score        *float64 `json:"score"`
	Answers      int64    `json:"answers"`
	Responses    int64    `json:"responses"`
}

// HeatmapCell is one department x rating-question average.
type HeatmapCell struct {
	DepartmentCode string   `json:"departmentCode"`
	DepartmentName string   `json:"departmentName"`
	QuestionID     uint     `json:"questionId"`
	QuestionText   string   `json:"questionText"`
	AvgRating      *float64 `json:"avgRating"`
	Answers        int64    `json:"answers"`
}

// TrendPoint is one day/month bucket. Buckets with zero responses are
// filled in by the service so the series has no holes.
type TrendPoint struct {
	Bucket    string   `json:"bucket"`
	Responses int64    `json:"responses"`
	AvgRating *float64 `json:"avgRating"`
}

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// CommentRow is a decorated free-text answer returned by comment search.
// Sentiment and Themes are derived in-process, never stored.
type CommentRow struct {
	AnswerID       uint      `json:"answerId"`
	ResponseID     uint      `json:"responseId"`
	QuestionID     uint      `json:"questionId"`
	QuestionText   string    `json:"questionText"`
	DepartmentCode string    `json:"departmentCode"`
	DepartmentName string    `json:"departmentName"`
	UserGroup      string    `json:"userGroup"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
	Sentiment      Sentiment `json:"sentiment"`
	Themes         []string  `json:"themes"`
}

type CommentsSummary struct {
	Total      int64            `json:"total"`
	Sentiments map[string]int64 `json:"sentiments"`
	Themes     map[string]int64 `json:"themes"`
}
