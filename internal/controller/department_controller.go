package controller

import (
	"errors"
	"fmt"
	"net/http"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/model"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	DeptService    *service.DepartmentService
	SummaryService *service.SummaryService
	ExportService  *service.ExportService
	Cfg            *config.Config
}

func NewDepartmentController(dept *service.DepartmentService, summary *service.SummaryService, export *service.ExportService, cfg *config.Config) *DepartmentController {
	return &DepartmentController{
		DeptService:    dept,
		SummaryService: summary,
		ExportService:  export,
		Cfg:            cfg,
	}
}

// canViewDepartment scopes department-level reads: staff and heads see
// their own department only, executives and admins see every department.
func canViewDepartment(claims *util.Claims, code string) bool {
	if claims == nil {
		return false
	}
	switch claims.Role {
	case model.Admin, model.Exec:
		return true
	default:
		return claims.DepartmentCode == code
	}
}

// Summary godoc
// @Summary สรุปผลรายหน่วยงาน
// @Description ค่าเฉลี่ยรายข้อ การกระจายคะแนน 1-5 และจำนวนผู้ตอบในช่วงเวลาที่เลือก
// @Tags department
// @Produce json
// @Param code path string true "รหัสหน่วยงาน"
// @Param from query string false "วันที่เริ่มต้น (yyyy-mm-dd)"
// @Param to query string false "วันที่สิ้นสุด (yyyy-mm-dd)"
// @Success 200 {object} model.DeptSummary
// @Failure 400 {object} object "ไม่พบหน่วยงานนี้"
// @Router /api/departments/{code}/summary [get]
func (c *DepartmentController) Summary(ctx *gin.Context) {
	code := ctx.Param("code")
	if !canViewDepartment(util.GetUserFromContext(ctx), code) {
		util.Forbidden(ctx)
		return
	}

	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	from := util.ParseDateParam(ctx.Query("from"))
	to := util.ParseDateParam(ctx.Query("to"))

	summary, err := c.SummaryService.GetDeptSummary(code, surveyID, from, to)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, summary)
}

// Yearly godoc
// @Summary สถิติรายปีของหน่วยงาน
// @Tags department
// @Produce json
// @Param code path string true "รหัสหน่วยงาน"
// @Success 200 {array} model.YearlyStat
// @Router /api/departments/{code}/yearly [get]
func (c *DepartmentController) Yearly(ctx *gin.Context) {
	code := ctx.Param("code")
	if !canViewDepartment(util.GetUserFromContext(ctx), code) {
		util.Forbidden(ctx)
		return
	}

	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	stats, err := c.SummaryService.GetDeptYearlyStats(code, surveyID)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, stats)
}

// ExportExcel godoc
// @Summary ดาวน์โหลดรายงาน Excel
// @Tags department
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param code path string true "รหัสหน่วยงาน"
// @Router /api/departments/{code}/export.xlsx [get]
func (c *DepartmentController) ExportExcel(ctx *gin.Context) {
	code := ctx.Param("code")
	if !canViewDepartment(util.GetUserFromContext(ctx), code) {
		util.Forbidden(ctx)
		return
	}

	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	from := util.ParseDateParam(ctx.Query("from"))
	to := util.ParseDateParam(ctx.Query("to"))

	data, filename, err := c.ExportService.ExportDeptExcel(code, surveyID, from, to)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportPdf godoc
// @Summary ดาวน์โหลดรายงาน PDF
// @Tags department
// @Produce application/pdf
// @Param code path string true "รหัสหน่วยงาน"
// @Router /api/departments/{code}/export.pdf [get]
func (c *DepartmentController) ExportPdf(ctx *gin.Context) {
	code := ctx.Param("code")
	if !canViewDepartment(util.GetUserFromContext(ctx), code) {
		util.Forbidden(ctx)
		return
	}

	surveyID := util.ParseUintQuery(ctx.Query("survey_id"), c.Cfg.Survey.ActiveSurveyID)
	from := util.ParseDateParam(ctx.Query("from"))
	to := util.ParseDateParam(ctx.Query("to"))

	data, filename, err := c.ExportService.ExportDeptPdf(code, surveyID, from, to)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", data)
}

// CentralQR serves the landing-page QR image. The image only changes
// when the public base URL does, so an hour of client caching is safe.
func (c *DepartmentController) CentralQR(ctx *gin.Context) {
	ctx.Header("Cache-Control", "public, max-age=3600")

	path := c.DeptService.Storage.Provider.LocalPath(service.CentralQRFilename)
	if path != "" {
		ctx.File(path)
		return
	}
	ctx.Redirect(http.StatusFound, c.DeptService.Storage.Provider.GetURL(service.CentralQRFilename))
}

// --- admin surface ---

// CreateDepartment godoc
// @Summary เพิ่มหน่วยงาน
// @Tags admin
// @Accept json
// @Produce json
// @Param body body service.DepartmentRequest true "ข้อมูลหน่วยงาน"
// @Success 201 {object} model.Department
// @Router /api/admin/departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req service.DepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dept, err := c.DeptService.Create(ctx.Request.Context(), req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, dept)
}

type departmentUpdateRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateDepartment godoc
// @Summary แก้ไขชื่อหน่วยงาน
// @Description แก้ไขได้เฉพาะชื่อ รหัสหน่วยงานถูกพิมพ์ลงในโปสเตอร์ QR แล้วจึงเปลี่ยนไม่ได้
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "รหัสภายใน"
// @Router /api/admin/departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	var req departmentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	dept, err := c.DeptService.Update(id, req.Name)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, dept)
}

// DeleteDepartment godoc
// @Summary ลบหน่วยงาน
// @Description ลบไม่ได้ถ้ามีแบบประเมินที่ถูกส่งเข้ามาแล้ว
// @Tags admin
// @Param id path int true "รหัสภายใน"
// @Router /api/admin/departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	if err := c.DeptService.Delete(id); err != nil {
		switch {
		case errors.Is(err, util.ErrDepartmentNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrDepartmentHasResponses):
			util.Error(ctx, http.StatusConflict, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, "ลบหน่วยงานแล้ว")
}

// RegenerateQR godoc
// @Summary สร้าง QR ของหน่วยงานใหม่
// @Tags admin
// @Param id path int true "รหัสภายใน"
// @Router /api/admin/departments/{id}/qrcode [post]
func (c *DepartmentController) RegenerateQR(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	dept, err := c.DeptService.RegenerateQR(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrDepartmentNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, dept)
}
