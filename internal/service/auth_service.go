package service

import (
	"context"
	"errors"
	"estudo_backend/internal/config"
	"estudo_backend/internal/model"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/util"
	"estudo_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput 注册参数，格式校验在控制器完成
type SignupInput struct {
	Name               string
	Email              string
	Password           string
	UserType           model.UserType
	CPF                string
	Phone              string
	Institution        string
	RegistrationNumber string
	Course             string
	PhotoURL           string
}

// AuthResult 登录/注册返回
// swagger:model AuthResult
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Denylist TokenDenylist
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, denylist TokenDenylist, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Denylist: denylist,
		Cfg:      cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)

	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrNotFound) {
		return nil, util.StorageFailure(err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = model.Aluno
	}

	user := &model.User{
		Name:               strings.TrimSpace(in.Name),
		Email:              email,
		PasswordHash:       string(hashedPassword),
		UserType:           userType,
		CPF:                in.CPF,
		Phone:              in.Phone,
		Institution:        in.Institution,
		RegistrationNumber: in.RegistrationNumber,
		Course:             in.Course,
		PhotoURL:           in.PhotoURL,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrEmailRegistered
		}
		return nil, util.StorageFailure(err)
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.Uint("userId", user.ID), zap.String("userType", string(user.UserType)))
	return &AuthResult{Token: token, User: user}, nil
}

// Login reports the same error for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, util.StorageFailure(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, util.StorageFailure(err)
	}
	return user, nil
}

// Logout revokes the token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return util.ErrUnauthorized
	}
	if err := s.Denylist.Revoke(ctx, claims.ID, claims.TTL()); err != nil {
		return util.StorageFailure(err)
	}
	return nil
}

// IsRevoked lets the auth middleware reject logged-out tokens.
func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.Denylist.IsRevoked(ctx, tokenID)
}
