package controller

import (
	"estudo_backend/internal/service"
	"estudo_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// QuestionListResponse 题目分页结果
// swagger:model QuestionListResponse
type QuestionListResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data"`
	Pagination util.Pagination `json:"pagination"`
}

// List godoc
// @Summary 获取题目列表
// @Description 按学科、科目、知识点、年份、考试机构筛选并分页
// @Tags 题库
// @Produce  json
// @Security ApiKeyAuth
// @Param   discipline query string false "学科"
// @Param   subject query string false "科目"
// @Param   topic query string false "知识点"
// @Param   year query int false "年份"
// @Param   board query string false "考试机构"
// @Param   page query int false "页码" default(1)
// @Param   limit query int false "每页条数，最大100" default(10)
// @Success 200 {object} QuestionListResponse "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	page, ok := queryInt(ctx, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(ctx, "limit", util.DefaultPageSize)
	if !ok {
		return
	}
	year, ok := queryInt(ctx, "year", 0)
	if !ok {
		return
	}

	filter := service.QuestionFilter{
		Discipline: ctx.Query("discipline"),
		Subject:    ctx.Query("subject"),
		Topic:      ctx.Query("topic"),
		Year:       year,
		Board:      ctx.Query("board"),
	}

	questions, pagination, err := c.QuestionService.List(ctx.Request.Context(), filter, page, limit)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, QuestionListResponse{
		Success:    true,
		Data:       questions,
		Pagination: pagination,
	})
}

// Get godoc
// @Summary 获取题目详情
// @Tags 题库
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.Question} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /questions/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	question, err := c.QuestionService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, question)
}
