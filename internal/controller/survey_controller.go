package controller

import (
	"errors"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SurveyController serves the public survey page: the department list,
// the active question set and the submission endpoint. None of these
// require a session.
type SurveyController struct {
	SubmissionService *service.SubmissionService
	QuestionService   *service.QuestionService
	DeptService       *service.DepartmentService
	Cfg               *config.Config
}

func NewSurveyController(submission *service.SubmissionService, question *service.QuestionService, dept *service.DepartmentService, cfg *config.Config) *SurveyController {
	return &SurveyController{
		SubmissionService: submission,
		QuestionService:   question,
		DeptService:       dept,
		Cfg:               cfg,
	}
}

// SubmitResponse godoc
// @Summary ส่งแบบประเมิน
// @Description บันทึกคำตอบทั้งชุดของผู้ตอบหนึ่งราย คำตอบทั้งหมดถูกบันทึกพร้อมกันหรือไม่ถูกบันทึกเลย
// @Tags survey
// @Accept json
// @Produce json
// @Param body body service.SubmitRequest true "คำตอบของผู้ตอบ"
// @Success 200 {object} object "บันทึกสำเร็จ"
// @Failure 400 {object} object "หน่วยงานไม่ถูกต้องหรือคำตอบผิดรูปแบบ"
// @Router /api/submit-response [post]
func (c *SurveyController) SubmitResponse(ctx *gin.Context) {
	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMalformedAnswer.Error())
		return
	}
	if req.SurveyID == 0 {
		req.SurveyID = c.Cfg.Survey.ActiveSurveyID
	}

	if err := c.SubmissionService.Submit(req); err != nil {
		switch {
		case errors.Is(err, util.ErrDepartmentNotFound),
			errors.Is(err, util.ErrMalformedAnswer):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Message(ctx, "บันทึกคำตอบเรียบร้อยแล้ว ขอบคุณสำหรับความคิดเห็นของท่าน")
}

// ListDepartments godoc
// @Summary รายชื่อหน่วยงาน
// @Tags survey
// @Produce json
// @Success 200 {array} model.Department
// @Router /api/departments [get]
func (c *SurveyController) ListDepartments(ctx *gin.Context) {
	departments, err := c.DeptService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, departments)
}

// ListQuestions godoc
// @Summary รายการคำถามของแบบประเมินปัจจุบัน
// @Tags survey
// @Produce json
// @Param survey_id query int false "รหัสแบบประเมิน"
// @Success 200 {array} model.Question
// @Router /api/questions [get]
func (c *SurveyController) ListQuestions(ctx *gin.Context) {
	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	questions, err := c.QuestionService.ListBySurvey(surveyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}
