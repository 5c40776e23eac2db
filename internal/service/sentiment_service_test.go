package service

import (
	"testing"

	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/repository"
)

func TestClassifySentiment(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Sentiment
	}{
		{"empty", "", model.SentimentNeutral},
		{"whitespace only", "   \t\n", model.SentimentNeutral},
		{"thai positive", "เจ้าหน้าที่บริการดีมาก ประทับใจ", model.SentimentPositive},
		{"thai negative", "รอคิวนานมาก ควรปรับปรุง", model.SentimentNegative},
		{"mai dee is negative", "บริการไม่ดี", model.SentimentNegative},
		{"neutral statement", "มาติดต่อเรื่องเอกสารทั่วไป", model.SentimentNeutral},
		{"english positive", "Very fast and friendly service", model.SentimentPositive},
		{"english negative", "the system is slow", model.SentimentNegative},
		{"mixed leans positive", "เจ้าหน้าที่สุภาพ แต่รอนาน", model.SentimentPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySentiment(tt.text); got != tt.want {
				t.Errorf("ClassifySentiment(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifySentimentDeterministic(t *testing.T) {
	text := "เจ้าหน้าที่สุภาพมาก แต่ระบบออนไลน์ช้า"
	first := ClassifySentiment(text)
	for i := 0; i < 10; i++ {
		if got := ClassifySentiment(text); got != first {
			t.Fatalf("classification changed between calls: %q then %q", first, got)
		}
	}
}

func TestExtractThemes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"staff and speed", "เจ้าหน้าที่ให้บริการรวดเร็ว", []string{"staff", "speed"}},
		{"facility", "ห้องน้ำสกปรก ที่จอดรถไม่พอ", []string{"facility"}},
		{"process", "ขั้นตอนเยอะ เอกสารซ้ำซ้อน", []string{"process"}},
		{"system english", "the website is down", []string{"system"}},
		{"no theme", "โดยรวมโอเค", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractThemes(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractThemes(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractThemes(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSearchCommentsFiltersAndDecorates(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	other := seedDepartment(t, db, "LIB", "สำนักหอสมุด")
	rating := seedQuestion(t, db, 1, "ความรวดเร็วในการให้บริการ", model.QuestionRating, 1)
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะเพิ่มเติม", model.QuestionText, 2)

	r1 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	seedAnswer(t, db, r1.ID, rating.ID, intPtr(4), "")
	seedAnswer(t, db, r1.ID, textQ.ID, nil, "เจ้าหน้าที่บริการดีมาก")

	r2 := seedResponse(t, db, 1, dept.ID, "บุคลากร")
	seedAnswer(t, db, r2.ID, textQ.ID, nil, "รอคิวนานมาก ควรปรับปรุง")

	// Empty comment and other-department comment must not appear.
	r3 := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
	seedAnswer(t, db, r3.ID, textQ.ID, nil, "")
	r4 := seedResponse(t, db, 1, other.ID, "นักศึกษา")
	seedAnswer(t, db, r4.ID, textQ.ID, nil, "ห้องสมุดเงียบดี")

	svc := NewSentimentService(repository.NewCommentRepository(db))

	rows, err := svc.SearchComments(CommentSearchRequest{SurveyID: 1, DepartmentCode: "REG"})
	if err != nil {
		t.Fatalf("SearchComments: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for _, row := range rows {
		if row.DepartmentCode != "REG" {
			t.Errorf("row leaked from department %s", row.DepartmentCode)
		}
		if row.Sentiment == "" {
			t.Errorf("row %d missing sentiment", row.AnswerID)
		}
	}

	negative, err := svc.SearchComments(CommentSearchRequest{SurveyID: 1, DepartmentCode: "REG", Sentiment: "negative"})
	if err != nil {
		t.Fatalf("SearchComments negative: %v", err)
	}
	if len(negative) != 1 || negative[0].Comment != "รอคิวนานมาก ควรปรับปรุง" {
		t.Fatalf("negative filter returned %v", negative)
	}
}

func TestGetCommentsSummaryTallies(t *testing.T) {
	db := newTestDB(t)
	dept := seedDepartment(t, db, "REG", "สำนักทะเบียน")
	textQ := seedQuestion(t, db, 1, "ข้อเสนอแนะเพิ่มเติม", model.QuestionText, 1)

	comments := []string{
		"เจ้าหน้าที่บริการดีมาก",
		"รอคิวนานมาก",
		"มาติดต่อเรื่องเอกสาร",
	}
	for _, comment := range comments {
		r := seedResponse(t, db, 1, dept.ID, "นักศึกษา")
		seedAnswer(t, db, r.ID, textQ.ID, nil, comment)
	}

	svc := NewSentimentService(repository.NewCommentRepository(db))
	summary, err := svc.GetCommentsSummary(CommentSearchRequest{SurveyID: 1, DepartmentCode: "REG"})
	if err != nil {
		t.Fatalf("GetCommentsSummary: %v", err)
	}

	if summary.Total != 3 {
		t.Errorf("Total = %d, want 3", summary.Total)
	}
	if summary.Sentiments["positive"] != 1 || summary.Sentiments["negative"] != 1 || summary.Sentiments["neutral"] != 1 {
		t.Errorf("sentiment tallies = %v", summary.Sentiments)
	}
	if summary.Themes["staff"] != 1 {
		t.Errorf("staff theme count = %d, want 1", summary.Themes["staff"])
	}
}
