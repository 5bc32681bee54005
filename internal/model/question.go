package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuestionOption is one labeled choice; options keep their letter order.
type QuestionOption struct {
	Letter string `json:"letter" yaml:"letter"`
	Text   string `json:"text" yaml:"text"`
}

// swagger:model Question
type Question struct {
	ID             uint                                `gorm:"primaryKey;autoIncrement" json:"id"`
	Discipline     string                              `gorm:"size:100;index" json:"discipline"`
	Subject        string                              `gorm:"size:255;index" json:"subject"`
	Topic          *string                             `gorm:"size:255" json:"topic"`
	Year           int                                 `gorm:"index" json:"year"`
	Board          string                              `gorm:"size:100;index" json:"board"`
	Exam           string                              `gorm:"size:255" json:"exam"`
	Text           string                              `gorm:"type:text;not null" json:"text"`
	SupportingText string                              `gorm:"type:text" json:"supportingText,omitempty"`
	ImageURL       string                              `gorm:"size:255" json:"imageUrl,omitempty"`
	Options        datatypes.JSONSlice[QuestionOption] `json:"options"`
	CorrectAnswer  string                              `gorm:"size:10" json:"correctAnswer"`
	Explanation    string                              `gorm:"type:text" json:"explanation,omitempty"`
	Type           string                              `gorm:"size:50" json:"type,omitempty"`
	CreatedAt      time.Time                           `json:"-"`
	UpdatedAt      time.Time                           `json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
