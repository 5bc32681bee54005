package controller

import (
	"estudo_backend/internal/service"
	"estudo_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户资料相关的HTTP请求
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UploadPhoto godoc
// @Summary 上传头像
// @Description 支持 JPEG、PNG、WebP，最大5MB
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   photo formData file true "头像图片"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "文件无效"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "上传失败"
// @Router /users/me/photo [post]
func (c *UserController) UploadPhoto(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		util.BadRequest(ctx, "photo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.BadRequest(ctx, "cannot read photo")
		return
	}
	defer file.Close()

	user, err := c.UserService.UploadPhoto(ctx.Request.Context(), claims.UserID, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.SuccessWithMessage(ctx, "Photo updated", user)
}
