package repository

import (
	"context"
	"estudo_backend/internal/model"
	"estudo_backend/pkg/database"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(t.Name())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Name:         "Aluno " + email,
		Email:        email,
		PasswordHash: "hash",
		UserType:     model.Aluno,
	}
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createQuestion(t *testing.T, db *gorm.DB, topic *string) *model.Question {
	t.Helper()
	q := model.Question{
		Discipline:    "Exatas",
		Subject:       "Math",
		Topic:         topic,
		Year:          2023,
		Board:         "ENEM",
		Text:          "Quanto é 2+2?",
		Options:       []model.QuestionOption{{Letter: "A", Text: "3"}, {Letter: "B", Text: "4"}},
		CorrectAnswer: "B",
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	return &q
}

func strPtr(s string) *string { return &s }

func questionRef(q *model.Question) string {
	return fmt.Sprintf("%d", q.ID)
}
