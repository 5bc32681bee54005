package controller

import (
	"estudo_backend/internal/service"
	"estudo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResponseController struct {
	ResponseService *service.ResponseService
}

func NewResponseController(responseService *service.ResponseService) *ResponseController {
	return &ResponseController{ResponseService: responseService}
}

// SubmitResponseRequest 提交答题记录
// swagger:model SubmitResponseRequest
type SubmitResponseRequest struct {
	UserID           uint       `json:"userId" binding:"required"`
	QuestionID       flexibleID `json:"questionId" swaggertype:"string" binding:"required"`
	QuestionText     string     `json:"questionText"`
	UserAnswer       string     `json:"userAnswer"`
	CorrectAnswer    string     `json:"correctAnswer"`
	IsCorrect        *bool      `json:"isCorrect" binding:"required"`
	Subject          string     `json:"subject" binding:"required"`
	Topic            *string    `json:"topic"`
	Difficulty       *string    `json:"difficulty"`
	TimeSpentSeconds *int       `json:"timeSpentSeconds" binding:"omitempty,min=0"`
}

// Submit godoc
// @Summary 提交答题记录
// @Description 保存一次答题并同步更新用户进度汇总
// @Tags 答题记录
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitResponseRequest true "答题记录"
// @Success 201 {object} util.Response{data=service.SubmitResult} "保存成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /responses [post]
func (c *ResponseController) Submit(ctx *gin.Context) {
	var req SubmitResponseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !authorizeUser(ctx, req.UserID) {
		return
	}

	result, err := c.ResponseService.Submit(ctx.Request.Context(), service.SubmitResponseInput{
		UserID:           req.UserID,
		QuestionID:       string(req.QuestionID),
		QuestionText:     req.QuestionText,
		UserAnswer:       req.UserAnswer,
		CorrectAnswer:    req.CorrectAnswer,
		IsCorrect:        *req.IsCorrect,
		Subject:          req.Subject,
		Topic:            req.Topic,
		Difficulty:       req.Difficulty,
		TimeSpentSeconds: req.TimeSpentSeconds,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "Response saved successfully", result)
}

// ListAll godoc
// @Summary 获取全部答题记录
// @Description 按时间倒序返回所有用户的答题记录，未指定 limit 时不分页
// @Tags 答题记录
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数"
// @Success 200 {object} util.Response{data=[]model.AttemptRecord} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "无权限"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /responses [get]
func (c *ResponseController) ListAll(ctx *gin.Context) {
	page, ok := queryInt(ctx, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(ctx, "limit", 0)
	if !ok {
		return
	}

	records, err := c.ResponseService.ListAll(ctx.Request.Context(), page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// ListForUser godoc
// @Summary 获取用户最近的答题记录
// @Tags 答题记录
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   limit query int false "条数，最大100" default(20)
// @Success 200 {object} util.Response{data=[]model.AttemptRecord} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /users/{userId}/responses [get]
func (c *ResponseController) ListForUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok || !authorizeUser(ctx, userID) {
		return
	}
	limit, ok := queryInt(ctx, "limit", 0)
	if !ok {
		return
	}

	records, err := c.ResponseService.ListForUser(ctx.Request.Context(), userID, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Performance godoc
// @Summary 获取用户答题表现
// @Description 按科目、知识点、难度统计正确率，并返回最近10条记录
// @Tags 学习统计
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.PerformanceReport} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "统计失败"
// @Router /users/{userId}/performance [get]
func (c *ResponseController) Performance(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok || !authorizeUser(ctx, userID) {
		return
	}

	report, err := c.ResponseService.GetPerformance(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// Progress godoc
// @Summary 获取用户学习进度
// @Description 根据答题记录实时计算总题数、正确数、平均分和学习天数
// @Tags 学习统计
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.ProgressReport} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /users/{userId}/progress [get]
func (c *ResponseController) Progress(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok || !authorizeUser(ctx, userID) {
		return
	}

	report, err := c.ResponseService.GetProgress(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
