package service

import (
	"bytes"
	"context"
	"errors"
	"estudo_backend/internal/repository"
	"estudo_backend/internal/util"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUploadPhotoLocal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "photo@x.com")

	cfg := testConfig()
	cfg.Storage.LocalPath = t.TempDir()
	svc := NewUserService(repository.NewUserRepository(db), NewStorageService(cfg))
	ctx := context.Background()

	content := []byte("\x89PNG fake image")
	updated, err := svc.UploadPhoto(ctx, user.ID, bytes.NewReader(content), int64(len(content)), "image/png")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(updated.PhotoURL, "/uploads/avatars/") || !strings.HasSuffix(updated.PhotoURL, ".png") {
		t.Fatalf("unexpected photo url: %q", updated.PhotoURL)
	}

	stored := filepath.Join(cfg.Storage.LocalPath, strings.TrimPrefix(updated.PhotoURL, "/uploads/"))
	data, err := os.ReadFile(stored)
	if err != nil || !bytes.Equal(data, content) {
		t.Fatalf("file not stored: err=%v", err)
	}

	reloaded, err := svc.UserRepo.FindByID(ctx, user.ID)
	if err != nil || reloaded.PhotoURL != updated.PhotoURL {
		t.Fatalf("photo url not persisted: %v %+v", err, reloaded)
	}
}

func TestUploadPhotoRejects(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "reject@x.com")
	cfg := testConfig()
	cfg.Storage.LocalPath = t.TempDir()
	svc := NewUserService(repository.NewUserRepository(db), NewStorageService(cfg))
	ctx := context.Background()

	tests := []struct {
		name        string
		userID      uint
		size        int64
		contentType string
		want        error
	}{
		{name: "wrong type", userID: user.ID, size: 10, contentType: "application/pdf", want: util.ErrValidation},
		{name: "too large", userID: user.ID, size: util.MaxPhotoSize + 1, contentType: "image/jpeg", want: util.ErrValidation},
		{name: "unknown user", userID: 999, size: 10, contentType: "image/jpeg", want: util.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UploadPhoto(ctx, tt.userID, bytes.NewReader(make([]byte, 10)), tt.size, tt.contentType)
			if !errors.Is(err, tt.want) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.want)
			}
		})
	}
}
