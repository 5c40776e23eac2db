package controller

import (
	"errors"

	"satisfaction_survey_backend/internal/config"
	"satisfaction_survey_backend/internal/service"
	"satisfaction_survey_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{AuthService: authService, Cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary เข้าสู่ระบบ
// @Description ตรวจสอบชื่อผู้ใช้และรหัสผ่าน แล้วออก token สำหรับเรียกใช้งาน API
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "ข้อมูลเข้าสู่ระบบ"
// @Success 200 {object} object "token และข้อมูลผู้ใช้"
// @Failure 401 {object} object "ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, 401, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	// Cookie lets the browser fetch export downloads without attaching a
	// header. The SPA still reads the token from the body.
	secure := c.Cfg.Server.Mode == "release"
	ctx.SetCookie("token", token, int(c.Cfg.JWT.ExpireTime.Seconds()), "/", "", secure, true)

	departmentCode := ""
	if user.Department != nil {
		departmentCode = user.Department.Code
	}
	util.Success(ctx, gin.H{
		"token": token,
		"user": gin.H{
			"id":             user.ID,
			"username":       user.Username,
			"role":           user.Role,
			"departmentCode": departmentCode,
		},
	})
}

// Me godoc
// @Summary ข้อมูลผู้ใช้ปัจจุบัน
// @Tags auth
// @Produce json
// @Success 200 {object} util.Claims
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, gin.H{
		"id":             claims.UserID,
		"username":       claims.Username,
		"role":           claims.Role,
		"departmentCode": claims.DepartmentCode,
	})
}

// Logout godoc
// @Summary ออกจากระบบ
// @Description เพิกถอน token ปัจจุบันจนกว่าจะหมดอายุ
// @Tags auth
// @Produce json
// @Success 200 {object} object
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString("token")
	if token != "" {
		if err := c.AuthService.Logout(ctx.Request.Context(), token); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	ctx.SetCookie("token", "", -1, "/", "", false, true)
	util.Message(ctx, "ออกจากระบบแล้ว")
}
