package service

import (
	"bytes"
	"fmt"
	"time"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/pkg/monitoring"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	Summary   *SummaryService
	Sentiment *SentimentService
	Cfg       *config.Config
}

func NewExportService(summary *SummaryService, sentiment *SentimentService, cfg *config.Config) *ExportService {
	return &ExportService{Summary: summary, Sentiment: sentiment, Cfg: cfg}
}

// ratingRatios returns the satisfied (4-5) and dissatisfied (1-2) shares
// of all numeric answers, as fractions. Both are zero when nothing was
// rated.
func ratingRatios(q model.QuestionSummary) (high, low float64) {
	total := q.R1 + q.R2 + q.R3 + q.R4 + q.R5
	if total == 0 {
		return 0, 0
	}
	high = float64(q.R4+q.R5) / float64(total)
	low = float64(q.R1+q.R2) / float64(total)
	return high, low
}

func exportFilename(code, ext string) string {
	return fmt.Sprintf("%s-summary-%s.%s", code, time.Now().Format("20060102"), ext)
}

// ExportDeptExcel fetches the aggregates and renders the two-sheet
// workbook. A missing department propagates the same not-found error the
// summary call produces.
func (s *ExportService) ExportDeptExcel(code string, surveyID uint, from, to *time.Time) ([]byte, string, error) {
	summary, err := s.Summary.GetDeptSummary(code, surveyID, from, to)
	if err != nil {
		return nil, "", err
	}
	comments, err := s.Sentiment.SearchComments(CommentSearchRequest{
		SurveyID:       surveyID,
		DepartmentCode: code,
		Limit:          summaryScanLimit,
	})
	if err != nil {
		return nil, "", err
	}

	data, err := BuildDeptExcel(summary, comments)
	if err != nil {
		return nil, "", err
	}

	monitoring.ExportsGenerated.WithLabelValues("xlsx").Inc()
	return data, exportFilename(code, "xlsx"), nil
}

// BuildDeptExcel is a pure function of the aggregated data: it performs
// no queries of its own.
func BuildDeptExcel(summary *model.DeptSummary, comments []model.CommentRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	const commentSheet = "Comments"

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(commentSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"305496"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("สรุปผลการประเมิน %s (%s)", summary.DepartmentName, summary.DepartmentCode)
	f.SetCellValue(summarySheet, "A1", title)

	headers := []string{"คำถาม", "ประเภท", "ค่าเฉลี่ย", "จำนวนคำตอบ", "1", "2", "3", "4", "5", "% พึงพอใจ (4-5)", "% ควรปรับปรุง (1-2)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(summarySheet, cell, h)
	}
	f.SetCellStyle(summarySheet, "A2", "K2", headerStyle)
	f.SetColWidth(summarySheet, "A", "A", 50)
	f.SetColWidth(summarySheet, "B", "K", 14)

	for i, q := range summary.Questions {
		row := i + 3
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), q.Text)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), string(q.Type))
		if q.AvgRating != nil {
			f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), *q.AvgRating)
		}
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), q.AnswersCount)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), q.R1)
		f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), q.R2)
		f.SetCellValue(summarySheet, fmt.Sprintf("G%d", row), q.R3)
		f.SetCellValue(summarySheet, fmt.Sprintf("H%d", row), q.R4)
		f.SetCellValue(summarySheet, fmt.Sprintf("I%d", row), q.R5)
		if q.Type == model.QuestionRating {
			high, low := ratingRatios(q)
			f.SetCellValue(summarySheet, fmt.Sprintf("J%d", row), high)
			f.SetCellValue(summarySheet, fmt.Sprintf("K%d", row), low)
			f.SetCellStyle(summarySheet, fmt.Sprintf("J%d", row), fmt.Sprintf("K%d", row), percentStyle)
		}
	}

	lastRow := len(summary.Questions) + 2
	if err := f.AutoFilter(summarySheet, fmt.Sprintf("A2:K%d", lastRow), nil); err != nil {
		return nil, err
	}

	commentHeaders := []string{"วันที่", "กลุ่มผู้ใช้บริการ", "คำถาม", "ข้อคิดเห็น", "ความรู้สึก", "ประเด็น"}
	for i, h := range commentHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(commentSheet, cell, h)
	}
	f.SetCellStyle(commentSheet, "A1", "F1", headerStyle)
	f.SetColWidth(commentSheet, "A", "A", 18)
	f.SetColWidth(commentSheet, "B", "C", 24)
	f.SetColWidth(commentSheet, "D", "D", 60)
	f.SetColWidth(commentSheet, "E", "F", 16)

	for i, c := range comments {
		row := i + 2
		f.SetCellValue(commentSheet, fmt.Sprintf("A%d", row), c.CreatedAt.Format("2006-01-02 15:04"))
		f.SetCellValue(commentSheet, fmt.Sprintf("B%d", row), c.UserGroup)
		f.SetCellValue(commentSheet, fmt.Sprintf("C%d", row), c.QuestionText)
		f.SetCellValue(commentSheet, fmt.Sprintf("D%d", row), c.Comment)
		f.SetCellValue(commentSheet, fmt.Sprintf("E%d", row), string(c.Sentiment))
		f.SetCellValue(commentSheet, fmt.Sprintf("F%d", row), joinThemes(c.Themes))
	}
	if err := f.AutoFilter(commentSheet, fmt.Sprintf("A1:F%d", len(comments)+1), nil); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinThemes(themes []string) string {
	out := ""
	for i, t := range themes {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}

// PDF layout constants, in millimeters on A4 portrait.
const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfLineHeight   = 6.0
)

func (s *ExportService) ExportDeptPdf(code string, surveyID uint, from, to *time.Time) ([]byte, string, error) {
	summary, err := s.Summary.GetDeptSummary(code, surveyID, from, to)
	if err != nil {
		return nil, "", err
	}
	comments, err := s.Sentiment.SearchComments(CommentSearchRequest{
		SurveyID:       surveyID,
		DepartmentCode: code,
		Limit:          summaryScanLimit,
	})
	if err != nil {
		return nil, "", err
	}

	data, err := s.BuildDeptPdf(summary, comments)
	if err != nil {
		return nil, "", err
	}

	monitoring.ExportsGenerated.WithLabelValues("pdf").Inc()
	return data, exportFilename(code, "pdf"), nil
}

// BuildDeptPdf lays the same data out across fixed-size pages. Row
// heights come from word-wrapped text measurement; a page break is
// inserted whenever the next row no longer fits above the footer.
func (s *ExportService) BuildDeptPdf(summary *model.DeptSummary, comments []model.CommentRow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	font := "Helvetica"
	if s.Cfg.PDF.FontPath != "" {
		font = s.Cfg.PDF.FontName
		if font == "" {
			font = "thai"
		}
		pdf.AddUTF8Font(font, "", s.Cfg.PDF.FontPath)
	}

	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	pdf.SetAutoPageBreak(false, pdfMarginBottom)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(font, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("หน้า %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*pdfMarginLeft
	breakAt := pageH - pdfMarginBottom - 10

	questionW := usableW * 0.55
	numW := (usableW - questionW) / 3

	writeTableHeader := func() {
		pdf.SetFont(font, "", 10)
		pdf.SetFillColor(48, 84, 150)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(questionW, pdfLineHeight+2, "คำถาม", "1", 0, "C", true, 0, "")
		pdf.CellFormat(numW, pdfLineHeight+2, "ค่าเฉลี่ย", "1", 0, "C", true, 0, "")
		pdf.CellFormat(numW, pdfLineHeight+2, "จำนวน", "1", 0, "C", true, 0, "")
		pdf.CellFormat(numW, pdfLineHeight+2, "5/4/3/2/1", "1", 1, "C", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont(font, "", 14)
	pdf.CellFormat(usableW, 10, fmt.Sprintf("สรุปผลการประเมิน %s (%s)", summary.DepartmentName, summary.DepartmentCode), "", 1, "C", false, 0, "")
	pdf.SetFont(font, "", 10)
	window := "ทั้งหมด"
	if summary.From != nil && summary.To != nil {
		window = fmt.Sprintf("%s ถึง %s", summary.From.Format("2006-01-02"), summary.To.Format("2006-01-02"))
	}
	pdf.CellFormat(usableW, pdfLineHeight, fmt.Sprintf("ช่วงเวลา: %s   จำนวนผู้ตอบ: %d", window, summary.Responses), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeTableHeader()
	for _, q := range summary.Questions {
		lines := pdf.SplitText(q.Text, questionW-2)
		rowH := float64(len(lines)) * pdfLineHeight
		if rowH < pdfLineHeight {
			rowH = pdfLineHeight
		}

		if pdf.GetY()+rowH > breakAt {
			pdf.AddPage()
			writeTableHeader()
		}

		x, y := pdf.GetX(), pdf.GetY()
		pdf.MultiCell(questionW, pdfLineHeight, q.Text, "1", "L", false)
		// MultiCell advances to the next line; restore the row cursor
		// for the numeric cells, which share the computed row height.
		pdf.SetXY(x+questionW, y)

		avg := "-"
		if q.AvgRating != nil {
			avg = fmt.Sprintf("%.2f", *q.AvgRating)
		}
		pdf.CellFormat(numW, rowH, avg, "1", 0, "C", false, 0, "")
		pdf.CellFormat(numW, rowH, fmt.Sprintf("%d", q.AnswersCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(numW, rowH, fmt.Sprintf("%d/%d/%d/%d/%d", q.R5, q.R4, q.R3, q.R2, q.R1), "1", 1, "C", false, 0, "")
		pdf.SetY(y + rowH)
	}

	// Comments section.
	pdf.Ln(4)
	if pdf.GetY()+2*pdfLineHeight > breakAt {
		pdf.AddPage()
	}
	pdf.SetFont(font, "", 12)
	pdf.CellFormat(usableW, 8, "ข้อคิดเห็น", "", 1, "L", false, 0, "")
	pdf.SetFont(font, "", 10)

	for _, c := range comments {
		text := fmt.Sprintf("[%s] %s: %s", c.CreatedAt.Format("2006-01-02"), c.UserGroup, c.Comment)
		lines := pdf.SplitText(text, usableW-2)
		rowH := float64(len(lines)) * pdfLineHeight
		if pdf.GetY()+rowH > breakAt {
			pdf.AddPage()
			pdf.SetFont(font, "", 10)
		}
		pdf.MultiCell(usableW, pdfLineHeight, text, "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
