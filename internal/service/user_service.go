package service

import (
	"context"
	"estudo_backend/internal/model"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/util"
	"estudo_backend/pkg/logger"
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var photoExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UserService 处理用户资料相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// UploadPhoto stores a profile image and points the user's photoUrl at it.
func (s *UserService) UploadPhoto(ctx context.Context, userID uint, reader io.Reader, size int64, contentType string) (*model.User, error) {
	if !slices.Contains(util.AllowedPhotoTypes, contentType) {
		return nil, util.Validation("photo must be a JPEG, PNG or WebP image")
	}
	if size <= 0 || size > util.MaxPhotoSize {
		return nil, util.Validation(fmt.Sprintf("photo must be at most %d bytes", util.MaxPhotoSize))
	}

	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, util.StorageFailure(err)
	}

	filename := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.NewString(), photoExtensions[contentType])
	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return nil, util.StorageFailure(err)
	}

	if err := s.UserRepo.UpdatePhotoURL(ctx, userID, url); err != nil {
		// 数据库更新失败时清理已上传文件
		if delErr := s.Storage.Delete(ctx, filename); delErr != nil {
			logger.Log.Warn("failed to remove orphaned photo", zap.String("file", filename), zap.Error(delErr))
		}
		return nil, util.StorageFailure(err)
	}

	user.PhotoURL = url
	return user, nil
}
