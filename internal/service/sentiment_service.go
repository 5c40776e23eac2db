package service

import (
	"regexp"
	"strings"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
)

// Sentiment is derived, never stored: the keyword tables below are the
// whole classifier. Positive is checked before negative, so text matching
// both polarities classifies positive.
var (
	positivePattern = regexp.MustCompile(`(?i)ดีมาก|ดีเยี่ยม|เยี่ยม|ประทับใจ|รวดเร็ว|สะดวก|สุภาพ|เป็นกันเอง|ชอบ|พึงพอใจ|พอใจ|ขอบคุณ|good|great|excellent|fast|friendly|helpful|love`)
	negativePattern = regexp.MustCompile(`(?i)ไม่ดี|ไม่พอใจ|แย่|ช้า|ล่าช้า|ควรปรับปรุง|ปรับปรุง|เสีย|ยุ่งยาก|ซับซ้อน|หยาบคาย|รอนาน|นานมาก|bad|poor|slow|terrible|rude|worst|complicated`)
)

// themePatterns maps topical tags onto keyword regexes. A comment can
// carry any number of tags, including none.
var themePatterns = []struct {
	Code    string
	Pattern *regexp.Regexp
}{
	{"staff", regexp.MustCompile(`(?i)เจ้าหน้าที่|พนักงาน|บุคลากร|ผู้ให้บริการ|staff|officer`)},
	{"speed", regexp.MustCompile(`(?i)ช้า|เร็ว|รอ|คิว|นาน|รวดเร็ว|ล่าช้า|slow|fast|wait|queue`)},
	{"facility", regexp.MustCompile(`(?i)ห้อง|สถานที่|ที่จอดรถ|แอร์|สะอาด|สกปรก|เก้าอี้|อาคาร|facility|room|parking|clean`)},
	{"process", regexp.MustCompile(`(?i)ขั้นตอน|เอกสาร|แบบฟอร์ม|กระบวนการ|ระเบียบ|process|document|form|procedure`)},
	{"communication", regexp.MustCompile(`(?i)ข้อมูล|ประชาสัมพันธ์|แจ้ง|ติดต่อ|สื่อสาร|ประกาศ|information|contact|announce`)},
	{"system", regexp.MustCompile(`(?i)ระบบ|เว็บไซต์|ออนไลน์|อินเทอร์เน็ต|แอป|system|website|online|internet|app`)},
}

// ClassifySentiment maps free text onto {positive, neutral, negative}.
// Total and deterministic: whitespace-only text is neutral, positive
// takes precedence over negative.
func ClassifySentiment(text string) model.Sentiment {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.SentimentNeutral
	}
	if positivePattern.MatchString(trimmed) {
		return model.SentimentPositive
	}
	if negativePattern.MatchString(trimmed) {
		return model.SentimentNegative
	}
	return model.SentimentNeutral
}

// ExtractThemes returns every theme tag whose pattern matches the text.
func ExtractThemes(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	var themes []string
	for _, t := range themePatterns {
		if t.Pattern.MatchString(trimmed) {
			themes = append(themes, t.Code)
		}
	}
	return themes
}

type SentimentService struct {
	CommentRepo *repository.CommentRepository
}

func NewSentimentService(commentRepo *repository.CommentRepository) *SentimentService {
	return &SentimentService{CommentRepo: commentRepo}
}

type CommentSearchRequest struct {
	SurveyID       uint
	DepartmentCode string
	Query          string
	Sentiment      string
	Limit          int
}

// SearchComments returns decorated comment rows sorted by response
// recency. The sentiment filter is applied after classification since
// sentiment is computed, not persisted.
func (s *SentimentService) SearchComments(req CommentSearchRequest) ([]model.CommentRow, error) {
	rows, err := s.CommentRepo.Search(repository.CommentSearchFilter{
		SurveyID:       req.SurveyID,
		DepartmentCode: req.DepartmentCode,
		Query:          req.Query,
		Limit:          req.Limit,
	})
	if err != nil {
		return nil, err
	}

	out := make([]model.CommentRow, 0, len(rows))
	for _, row := range rows {
		sentiment := ClassifySentiment(row.Comment)
		if req.Sentiment != "" && string(sentiment) != req.Sentiment {
			continue
		}
		out = append(out, model.CommentRow{
			AnswerID:       row.AnswerID,
			ResponseID:     row.ResponseID,
			QuestionID:     row.QuestionID,
			QuestionText:   row.QuestionText,
			DepartmentCode: row.DepartmentCode,
			DepartmentName: row.DepartmentName,
			UserGroup:      row.UserGroup,
			Comment:        row.Comment,
			CreatedAt:      row.CreatedAt,
			Sentiment:      sentiment,
			Themes:         ExtractThemes(row.Comment),
		})
	}
	return out, nil
}

// summaryScanLimit bounds how many comments the tally pass reads.
const summaryScanLimit = 1000

func (s *SentimentService) GetCommentsSummary(req CommentSearchRequest) (*model.CommentsSummary, error) {
	req.Sentiment = ""
	req.Limit = summaryScanLimit
	rows, err := s.SearchComments(req)
	if err != nil {
		return nil, err
	}

	summary := &model.CommentsSummary{
		Total:      int64(len(rows)),
		Sentiments: map[string]int64{"positive": 0, "neutral": 0, "negative": 0},
		Themes:     map[string]int64{},
	}
	for _, row := range rows {
		summary.Sentiments[string(row.Sentiment)]++
		for _, theme := range row.Themes {
			summary.Themes[theme]++
		}
	}
	return summary, nil
}
