package model

import "time"

// SubjectTopicCount is one (subject, raw topic) group as read from the store.
type SubjectTopicCount struct {
	Subject          string
	Topic            *string
	TotalResponses   int64
	CorrectResponses int64
}

// DifficultyCount is one difficulty group as read from the store.
type DifficultyCount struct {
	Difficulty       string
	TotalResponses   int64
	CorrectResponses int64
}

// PerformanceSnapshot holds every grouped read needed for one report,
// taken inside a single transaction.
type PerformanceSnapshot struct {
	SubjectTopics []SubjectTopicCount
	Difficulties  []DifficultyCount
	Recent        []RecentResponse
}

type TopicStats struct {
	TotalResponses   int64   `json:"total_responses"`
	CorrectResponses int64   `json:"correct_responses"`
	Accuracy         float64 `json:"accuracy"`
}

// swagger:model SubjectPerformance
type SubjectPerformance struct {
	Subject            string                `json:"subject"`
	TotalResponses     int64                 `json:"total_responses"`
	CorrectResponses   int64                 `json:"correct_responses"`
	CalculatedAccuracy float64               `json:"calculated_accuracy"`
	Topics             map[string]TopicStats `json:"topics"`
}

// swagger:model RecentResponse
type RecentResponse struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"question_text"`
	IsCorrect    bool      `json:"is_correct"`
	Subject      string    `json:"subject"`
	CreatedAt    time.Time `json:"created_at"`
}

// swagger:model DifficultyPerformance
type DifficultyPerformance struct {
	Difficulty string  `json:"difficulty"`
	Total      int64   `json:"total"`
	Accuracy   float64 `json:"accuracy"`
}

// swagger:model PerformanceReport
type PerformanceReport struct {
	BySubject        []SubjectPerformance    `json:"bySubject"`
	RecentResponses  []RecentResponse        `json:"recentResponses"`
	ByDifficulty     []DifficultyPerformance `json:"byDifficulty"`
	TotalResponses   int64                   `json:"totalResponses"`
	CorrectResponses int64                   `json:"correctResponses"`
	Accuracy         int64                   `json:"accuracy"`
	TotalSubjects    int                     `json:"totalSubjects"`
}
