package controller

import (
	"errors"
	"net/http"
	"strconv"

	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary รายชื่อผู้ใช้
// @Tags admin
// @Produce json
// @Param page query int false "หน้า"
// @Param limit query int false "จำนวนต่อหน้า"
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	users, total, err := c.UserService.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"users": users, "total": total})
}

// Create godoc
// @Summary เพิ่มผู้ใช้
// @Tags admin
// @Accept json
// @Produce json
// @Param body body service.UserRequest true "ข้อมูลผู้ใช้"
// @Router /api/admin/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req service.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUsernameTaken):
			util.Error(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, util.ErrInvalidCredentials):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, user)
}

// Update godoc
// @Summary แก้ไขผู้ใช้
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "รหัสผู้ใช้"
// @Router /api/admin/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	var req service.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(id, req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}

// Delete godoc
// @Summary ลบผู้ใช้
// @Description ผู้ดูแลระบบลบบัญชีของตัวเองไม่ได้
// @Tags admin
// @Param id path int true "รหัสผู้ใช้"
// @Router /api/admin/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id := util.ParseUintQuery(ctx.Param("id"), 0)
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.UserService.Delete(id, claims.UserID); err != nil {
		switch {
		case errors.Is(err, util.ErrCannotDeleteSelf):
			util.Error(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Message(ctx, "ลบผู้ใช้แล้ว")
}
