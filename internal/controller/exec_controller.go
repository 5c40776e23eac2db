package controller

import (
	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ExecController serves the executive dashboard: cross-department
// rankings, the department x question heatmap and the time series.
type ExecController struct {
	AnalyticsService *service.AnalyticsService
	Cfg              *config.Config
}

func NewExecController(analytics *service.AnalyticsService, cfg *config.Config) *ExecController {
	return &ExecController{AnalyticsService: analytics, Cfg: cfg}
}

func (c *ExecController) parseFilter(ctx *gin.Context) model.ExecFilter {
	return model.ExecFilter{
		SurveyID:    util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID),
		From:        util.ParseDateParam(ctx.Query("from")),
		To:          util.ParseDateParam(ctx.Query("to")),
		UserGroups:  util.SplitCSV(ctx.Query("user_groups")),
		Departments: util.SplitCSV(ctx.Query("departments")),
		RatingMin:   util.ParseIntPtr(ctx.Query("rating_min")),
		RatingMax:   util.ParseIntPtr(ctx.Query("rating_max")),
		Group:       ctx.Query("group"),
	}
}

// Rank godoc
// @Summary อันดับหน่วยงาน
// @Description จัดอันดับหน่วยงานตามคะแนนเฉลี่ย หน่วยงานที่ไม่มีผู้ตอบยังคงปรากฏท้ายตาราง
// @Tags exec
// @Produce json
// @Param from query string false "วันที่เริ่มต้น (yyyy-mm-dd)"
// @Param to query string false "วันที่สิ้นสุด (yyyy-mm-dd)"
// @Param user_groups query string false "กลุ่มผู้ใช้บริการ คั่นด้วยจุลภาค"
// @Param departments query string false "รหัสหน่วยงาน คั่นด้วยจุลภาค"
// @Success 200 {array} model.RankRow
// @Router /api/exec/rank [get]
func (c *ExecController) Rank(ctx *gin.Context) {
	rows, err := c.AnalyticsService.GetRank(c.parseFilter(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Heatmap godoc
// @Summary ตารางความร้อนหน่วยงาน x คำถาม
// @Tags exec
// @Produce json
// @Success 200 {array} model.HeatmapCell
// @Router /api/exec/heatmap [get]
func (c *ExecController) Heatmap(ctx *gin.Context) {
	rows, err := c.AnalyticsService.GetHeatmap(c.parseFilter(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// Trend godoc
// @Summary แนวโน้มตามช่วงเวลา
// @Description อนุกรมรายวันหรือรายเดือน ช่วงที่ไม่มีผู้ตอบถูกเติมค่าศูนย์
// @Tags exec
// @Produce json
// @Param group query string false "day หรือ month (ค่าเริ่มต้น month)"
// @Success 200 {array} model.TrendPoint
// @Router /api/exec/trend [get]
func (c *ExecController) Trend(ctx *gin.Context) {
	rows, err := c.AnalyticsService.GetTrend(c.parseFilter(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
