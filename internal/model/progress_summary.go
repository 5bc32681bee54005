package model

import "time"

// ProgressSummary is the per-user rollup kept in step with user_responses.
// swagger:model ProgressSummary
type ProgressSummary struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"userId"`
	TotalQuestions int64     `gorm:"not null;default:0" json:"totalQuestoes"`
	CorrectCount   int64     `gorm:"not null;default:0" json:"acertos"`
	AverageScore   float64   `gorm:"not null;default:0" json:"mediaGeral"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (ProgressSummary) TableName() string {
	return "user_progress"
}

// ProgressReport is recomputed from user_responses on every read.
// swagger:model ProgressReport
type ProgressReport struct {
	TotalQuestoes int64   `json:"totalQuestoes"`
	Acertos       int64   `json:"acertos"`
	MediaGeral    float64 `json:"mediaGeral"`
	DiasEstudo    int64   `json:"diasEstudo"`
}
