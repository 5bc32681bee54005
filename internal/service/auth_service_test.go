package service

import (
	"context"
	"errors"
	"estudo_backend/internal/model"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/util"
	"testing"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), NewMemoryDenylist(), testConfig())
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, SignupInput{
		Name:     "Maria Silva",
		Email:    "  Maria@Example.com ",
		Password: "secret123",
		UserType: model.Professor,
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if res.Token == "" || res.User.ID == 0 {
		t.Fatalf("unexpected signup result: %+v", res)
	}
	if res.User.Email != "maria@example.com" || res.User.PasswordHash == "secret123" {
		t.Fatalf("email not normalized or password not hashed: %+v", res.User)
	}

	var summary model.ProgressSummary
	if err := svc.UserRepo.DB.Where("user_id = ?", res.User.ID).First(&summary).Error; err != nil {
		t.Fatalf("signup should create a progress summary: %v", err)
	}

	login, err := svc.Login(ctx, "maria@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := util.ParseJWT(login.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != res.User.ID || claims.UserType != model.Professor || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSignupDefaultsToAluno(t *testing.T) {
	svc := newAuthService(t)

	res, err := svc.Signup(context.Background(), SignupInput{Name: "João", Email: "j@x.com", Password: "123456"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if res.User.UserType != model.Aluno {
		t.Fatalf("unexpected user type: %q", res.User.UserType)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	in := SignupInput{Name: "Maria", Email: "dup@x.com", Password: "secret123"}

	if _, err := svc.Signup(ctx, in); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	in.Email = "DUP@x.com"
	if _, err := svc.Signup(ctx, in); !errors.Is(err, util.ErrConflict) {
		t.Fatalf("unexpected error: got=%v want=%v", err, util.ErrConflict)
	}
}

func TestLoginFailuresLookAlike(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	if _, err := svc.Signup(ctx, SignupInput{Name: "Maria", Email: "m@x.com", Password: "secret123"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, "m@x.com", "nope")
	_, unknownEmail := svc.Login(ctx, "ghost@x.com", "secret123")

	for _, err := range []error{wrongPassword, unknownEmail} {
		if !errors.Is(err, util.ErrUnauthorized) {
			t.Fatalf("unexpected error: got=%v want=%v", err, util.ErrUnauthorized)
		}
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("login errors differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Signup(ctx, SignupInput{Name: "Maria", Email: "out@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	claims, err := util.ParseJWT(res.Token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if revoked, _ := svc.IsRevoked(ctx, claims.ID); revoked {
		t.Fatalf("fresh token reported revoked")
	}
	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if revoked, _ := svc.IsRevoked(ctx, claims.ID); !revoked {
		t.Fatalf("token should be revoked after logout")
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Me(context.Background(), 77); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("unexpected error: got=%v want=%v", err, util.ErrNotFound)
	}
}
