package model

import "time"

// AttemptRecord is one user's answer to one question. Rows are append-only.
// swagger:model AttemptRecord
type AttemptRecord struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint      `gorm:"not null;index:idx_user_responses_user_created,priority:1" json:"userId"`
	QuestionID       string    `gorm:"size:64;not null" json:"questionId"`
	QuestionText     string    `gorm:"type:text" json:"questionText"`
	UserAnswer       string    `gorm:"size:255" json:"userAnswer"`
	CorrectAnswer    string    `gorm:"size:255" json:"correctAnswer"`
	IsCorrect        bool      `gorm:"not null" json:"isCorrect"`
	Subject          string    `gorm:"size:255;not null" json:"subject"`
	Topic            *string   `gorm:"size:255" json:"topic"`
	Difficulty       *string   `gorm:"size:50" json:"difficulty"`
	TimeSpentSeconds *int      `json:"timeSpentSeconds"`
	CreatedAt        time.Time `gorm:"index:idx_user_responses_user_created,priority:2" json:"createdAt"`
}

func (AttemptRecord) TableName() string {
	return "user_responses"
}
