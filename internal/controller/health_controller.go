package controller

import (
	"estudo_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.HandleError(ctx, util.StorageFailure(err))
		return
	}

	if err := sqlDB.PingContext(ctx.Request.Context()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, util.CodeStorage, "Database unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}

// @Summary 数据库时间
// @Description 返回数据库当前时间，用于连通性检查
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	var now string
	if err := c.DB.WithContext(ctx.Request.Context()).Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		util.HandleError(ctx, util.StorageFailure(err))
		return
	}
	util.Success(ctx, gin.H{"time": now})
}
