package controller

import (
	"errors"
	"net/http"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
	Cfg             *config.Config
}

func NewQuestionController(questionService *service.QuestionService, cfg *config.Config) *QuestionController {
	return &QuestionController{QuestionService: questionService, Cfg: cfg}
}

// List godoc
// @Summary รายการคำถาม
// @Tags admin
// @Produce json
// @Param survey_id query int false "รหัสแบบประเมิน"
// @Router /api/admin/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	questions, err := c.QuestionService.ListBySurvey(surveyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// Create godoc
// @Summary เพิ่มคำถาม
// @Tags admin
// @Accept json
// @Produce json
// @Param body body service.QuestionRequest true "ข้อมูลคำถาม"
// @Router /api/admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.SurveyID == 0 {
		req.SurveyID = c.Cfg.Survey.ActiveSurveyID
	}

	question, err := c.QuestionService.Create(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// Update godoc
// @Summary แก้ไขคำถาม
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "รหัสคำถาม"
// @Router /api/admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.Update(id, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, question)
}

// Delete godoc
// @Summary ลบคำถาม
// @Description ลบไม่ได้ถ้าคำถามมีคำตอบแล้ว
// @Tags admin
// @Param id path int true "รหัสคำถาม"
// @Router /api/admin/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	if err := c.QuestionService.Delete(id); err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionHasAnswers):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, "ลบคำถามแล้ว")
}
