package service

import (
	"estudo_backend/internal/model"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBuildPerformanceReportScenario(t *testing.T) {
	snapshot := &model.PerformanceSnapshot{
		SubjectTopics: []model.SubjectTopicCount{
			{Subject: "Math", Topic: strPtr("Algebra"), TotalResponses: 2, CorrectResponses: 1},
			{Subject: "Physics", Topic: nil, TotalResponses: 1, CorrectResponses: 1},
		},
	}

	report := BuildPerformanceReport(snapshot)

	if len(report.BySubject) != 2 {
		t.Fatalf("unexpected subjects: %+v", report.BySubject)
	}
	math := report.BySubject[0]
	if math.Subject != "Math" || math.TotalResponses != 2 || math.CorrectResponses != 1 || math.CalculatedAccuracy != 50 {
		t.Fatalf("unexpected math: %+v", math)
	}
	if got := math.Topics["Algebra"]; got.TotalResponses != 2 || got.CorrectResponses != 1 || got.Accuracy != 50 {
		t.Fatalf("unexpected algebra topic: %+v", got)
	}
	physics := report.BySubject[1]
	if physics.CalculatedAccuracy != 100 {
		t.Fatalf("unexpected physics accuracy: %v", physics.CalculatedAccuracy)
	}
	if got, ok := physics.Topics["Geral"]; !ok || got.TotalResponses != 1 || got.Accuracy != 100 {
		t.Fatalf("physics should fall into Geral: %+v", physics.Topics)
	}

	if report.TotalResponses != 3 || report.CorrectResponses != 2 {
		t.Fatalf("unexpected totals: %d/%d", report.CorrectResponses, report.TotalResponses)
	}
	if report.Accuracy != 67 {
		t.Fatalf("unexpected accuracy: got=%d want=67", report.Accuracy)
	}
	if report.TotalSubjects != 2 {
		t.Fatalf("unexpected totalSubjects: got=%d want=2", report.TotalSubjects)
	}
}

func TestBuildPerformanceReportMergesGeneralTopic(t *testing.T) {
	snapshot := &model.PerformanceSnapshot{
		SubjectTopics: []model.SubjectTopicCount{
			{Subject: "History", Topic: nil, TotalResponses: 1, CorrectResponses: 1},
			{Subject: "History", Topic: strPtr(""), TotalResponses: 1, CorrectResponses: 0},
			{Subject: "History", Topic: strPtr("Geral"), TotalResponses: 2, CorrectResponses: 1},
			{Subject: "History", Topic: strPtr("  "), TotalResponses: 2, CorrectResponses: 2},
		},
	}

	report := BuildPerformanceReport(snapshot)

	if len(report.BySubject) != 1 {
		t.Fatalf("unexpected subjects: %+v", report.BySubject)
	}
	topics := report.BySubject[0].Topics
	if len(topics) != 1 {
		t.Fatalf("expected a single Geral bucket, got %+v", topics)
	}
	geral := topics["Geral"]
	if geral.TotalResponses != 6 || geral.CorrectResponses != 4 || geral.Accuracy != 66.67 {
		t.Fatalf("unexpected Geral bucket: %+v", geral)
	}
}

func TestBuildPerformanceReportRoundingTiers(t *testing.T) {
	tests := []struct {
		name         string
		rows         []model.SubjectTopicCount
		wantSubject  float64
		wantAccuracy int64
	}{
		{
			name:         "half rounds up overall",
			rows:         []model.SubjectTopicCount{{Subject: "Math", TotalResponses: 8, CorrectResponses: 1}},
			wantSubject:  12.5,
			wantAccuracy: 13,
		},
		{
			name:         "two thirds",
			rows:         []model.SubjectTopicCount{{Subject: "Math", TotalResponses: 3, CorrectResponses: 2}},
			wantSubject:  66.67,
			wantAccuracy: 67,
		},
		{
			// subject accuracy comes from summed counts, not from topic accuracies
			name: "subject from raw counts",
			rows: []model.SubjectTopicCount{
				{Subject: "Math", Topic: strPtr("A"), TotalResponses: 3, CorrectResponses: 1},
				{Subject: "Math", Topic: strPtr("B"), TotalResponses: 3, CorrectResponses: 1},
				{Subject: "Math", Topic: strPtr("C"), TotalResponses: 1, CorrectResponses: 1},
			},
			wantSubject:  42.86,
			wantAccuracy: 43,
		},
		{
			name:         "exact half cent rounds up",
			rows:         []model.SubjectTopicCount{{Subject: "Math", TotalResponses: 160, CorrectResponses: 23}},
			wantSubject:  14.38,
			wantAccuracy: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildPerformanceReport(&model.PerformanceSnapshot{SubjectTopics: tt.rows})
			if got := report.BySubject[0].CalculatedAccuracy; got != tt.wantSubject {
				t.Fatalf("calculated_accuracy: got=%v want=%v", got, tt.wantSubject)
			}
			if report.Accuracy != tt.wantAccuracy {
				t.Fatalf("accuracy: got=%d want=%d", report.Accuracy, tt.wantAccuracy)
			}
		})
	}
}

func TestBuildPerformanceReportHalfCentTopicAndDifficulty(t *testing.T) {
	report := BuildPerformanceReport(&model.PerformanceSnapshot{
		SubjectTopics: []model.SubjectTopicCount{
			{Subject: "Math", Topic: strPtr("Algebra"), TotalResponses: 160, CorrectResponses: 23},
		},
		Difficulties: []model.DifficultyCount{
			{Difficulty: "hard", TotalResponses: 160, CorrectResponses: 23},
		},
	})

	if got := report.BySubject[0].Topics["Algebra"].Accuracy; got != 14.38 {
		t.Fatalf("topic accuracy: got=%v want=14.38", got)
	}
	if got := report.ByDifficulty[0].Accuracy; got != 14.38 {
		t.Fatalf("difficulty accuracy: got=%v want=14.38", got)
	}
}

func TestBuildPerformanceReportDifficultyAndRecent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	snapshot := &model.PerformanceSnapshot{
		Difficulties: []model.DifficultyCount{
			{Difficulty: "easy", TotalResponses: 3, CorrectResponses: 1},
			{Difficulty: "hard", TotalResponses: 2, CorrectResponses: 0},
		},
		Recent: []model.RecentResponse{
			{ID: 2, Subject: "Math", IsCorrect: true, CreatedAt: now},
			{ID: 1, Subject: "Math", CreatedAt: now.Add(-time.Minute)},
		},
	}

	report := BuildPerformanceReport(snapshot)

	if len(report.ByDifficulty) != 2 || report.ByDifficulty[0].Accuracy != 33.33 || report.ByDifficulty[1].Accuracy != 0 {
		t.Fatalf("unexpected difficulties: %+v", report.ByDifficulty)
	}
	if report.ByDifficulty[0].Total != 3 {
		t.Fatalf("unexpected difficulty total: %+v", report.ByDifficulty[0])
	}
	if len(report.RecentResponses) != 2 || report.RecentResponses[0].ID != 2 {
		t.Fatalf("recent order not kept: %+v", report.RecentResponses)
	}
}

func TestBuildPerformanceReportEmpty(t *testing.T) {
	for _, snapshot := range []*model.PerformanceSnapshot{nil, {}} {
		report := BuildPerformanceReport(snapshot)
		if report.BySubject == nil || report.ByDifficulty == nil || report.RecentResponses == nil {
			t.Fatalf("slices must be non-nil: %+v", report)
		}
		if report.Accuracy != 0 || report.TotalResponses != 0 || report.TotalSubjects != 0 {
			t.Fatalf("unexpected empty report: %+v", report)
		}
	}
}
