package controller

import (
	"estudo_backend/internal/model"
	"estudo_backend/internal/service"
	"estudo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// SignupRequest defines model for registration
// swagger:model SignupRequest
type SignupRequest struct {
	Name               string `json:"name" binding:"required,min=3"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=6"`
	UserType           string `json:"userType" binding:"omitempty,oneof=aluno professor"`
	CPF                string `json:"cpf" binding:"omitempty,max=14"`
	Phone              string `json:"phone" binding:"omitempty,max=20"`
	Institution        string `json:"institution" binding:"omitempty,max=255"`
	RegistrationNumber string `json:"registrationNumber" binding:"omitempty,max=50"`
	Course             string `json:"course" binding:"omitempty,max=255"`
	PhotoURL           string `json:"photoUrl" binding:"omitempty,max=255"`
}

// Signup godoc
// @Summary 注册新用户
// @Description 创建用户及其学习进度汇总，并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "用户注册信息"
// @Success 201 {object} util.Response{data=service.AuthResult} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Signup(ctx.Request.Context(), service.SignupInput{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		UserType:           model.UserType(req.UserType),
		CPF:                req.CPF,
		Phone:              req.Phone,
		Institution:        req.Institution,
		RegistrationNumber: req.RegistrationNumber,
		Course:             req.Course,
		PhotoURL:           req.PhotoURL,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "User registered successfully", result)
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 验证用户身份并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} util.Response{data=service.AuthResult} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "凭据无效"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Me godoc
// @Summary 获取当前用户
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.Me(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// Logout godoc
// @Summary 退出登录
// @Description 吊销当前令牌直至其过期
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), util.GetUserFromContext(ctx)); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Logged out", nil)
}
