package controller

import (
	"errors"
	"strconv"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	SentimentService *service.SentimentService
	ActionService    *service.ActionService
	Cfg              *config.Config
}

func NewCommentController(sentiment *service.SentimentService, action *service.ActionService, cfg *config.Config) *CommentController {
	return &CommentController{SentimentService: sentiment, ActionService: action, Cfg: cfg}
}

// departmentCodeParam reads the department filter. department_code is
// the documented name; the short form is kept for older dashboard
// builds.
func departmentCodeParam(ctx *gin.Context) string {
	if v := ctx.Query("department_code"); v != "" {
		return v
	}
	return ctx.Query("department")
}

// scopedDepartment returns the department code the caller may query.
// Staff and heads are pinned to their own department regardless of the
// parameter; executives and admins query freely.
func scopedDepartment(claims *util.Claims, requested string) (string, bool) {
	if claims == nil {
		return "", false
	}
	switch claims.Role {
	case model.Admin, model.Exec:
		return requested, true
	default:
		if requested != "" && requested != claims.DepartmentCode {
			return "", false
		}
		return claims.DepartmentCode, true
	}
}

// Search godoc
// @Summary ค้นหาข้อคิดเห็น
// @Description ค้นหาข้อความอิสระพร้อมผลวิเคราะห์ความรู้สึกและประเด็น
// @Tags comments
// @Produce json
// @Param department_code query string false "รหัสหน่วยงาน"
// @Param q query string false "คำค้น"
// @Param sentiment query string false "positive | neutral | negative"
// @Param limit query int false "จำนวนสูงสุด (ค่าเริ่มต้น 100)"
// @Success 200 {array} model.CommentRow
// @Router /api/comments/search [get]
func (c *CommentController) Search(ctx *gin.Context) {
	dept, ok := scopedDepartment(util.GetUserFromContext(ctx), departmentCodeParam(ctx))
	if !ok {
		util.Forbidden(ctx)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	rows, err := c.SentimentService.SearchComments(service.CommentSearchRequest{
		SurveyID:       util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID),
		DepartmentCode: dept,
		Query:          ctx.Query("q"),
		Sentiment:      ctx.Query("sentiment"),
		Limit:          limit,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Summary godoc
// @Summary สรุปข้อคิดเห็น
// @Description จำนวนข้อคิดเห็นแยกตามความรู้สึกและประเด็น
// @Tags comments
// @Produce json
// @Success 200 {object} model.CommentsSummary
// @Router /api/comments/summary [get]
func (c *CommentController) Summary(ctx *gin.Context) {
	dept, ok := scopedDepartment(util.GetUserFromContext(ctx), departmentCodeParam(ctx))
	if !ok {
		util.Forbidden(ctx)
		return
	}

	summary, err := c.SentimentService.GetCommentsSummary(service.CommentSearchRequest{
		SurveyID:       util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID),
		DepartmentCode: dept,
		Query:          ctx.Query("q"),
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// ListActions godoc
// @Summary รายการการดำเนินการแก้ไข
// @Tags actions
// @Produce json
// @Param department_code query string false "รหัสหน่วยงาน"
// @Param status query string false "open | in_progress | done"
// @Success 200 {array} model.CommentAction
// @Router /api/comments/actions [get]
func (c *CommentController) ListActions(ctx *gin.Context) {
	dept, ok := scopedDepartment(util.GetUserFromContext(ctx), departmentCodeParam(ctx))
	if !ok {
		util.Forbidden(ctx)
		return
	}

	actions, err := c.ActionService.ListActions(dept, ctx.Query("status"))
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, actions)
}

// CreateAction godoc
// @Summary สร้างการดำเนินการจากข้อคิดเห็น
// @Description เปิดรายการติดตามจากข้อคิดเห็นหนึ่งรายการ สถานะเริ่มต้นคือ open
// @Tags actions
// @Accept json
// @Produce json
// @Param body body service.CreateActionRequest true "ข้อมูลการดำเนินการ"
// @Success 201 {object} model.CommentAction
// @Router /api/comments/actions [post]
func (c *CommentController) CreateAction(ctx *gin.Context) {
	var req service.CreateActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	action, err := c.ActionService.CreateAction(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrActionNotFound),
			errors.Is(err, util.ErrAnswerNotComment):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, action)
}

// UpdateAction godoc
// @Summary แก้ไขสถานะการดำเนินการ
// @Tags actions
// @Accept json
// @Produce json
// @Param body body service.UpdateActionRequest true "ฟิลด์ที่ต้องการแก้ไข อย่างน้อยหนึ่งฟิลด์"
// @Success 200 {object} model.CommentAction
// @Router /api/comments/actions [put]
func (c *CommentController) UpdateAction(ctx *gin.Context) {
	var req service.UpdateActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	action, err := c.ActionService.UpdateAction(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrActionNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrActionNoFields),
			errors.Is(err, util.ErrInvalidActionStatus):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, action)
}
