package repository

import (
	"context"
	"errors"
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type attemptTotals struct {
	Total   int64
	Correct int64
}

const correctSumExpr = "COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0)"

func countAttempts(tx *gorm.DB, userID uint) (attemptTotals, error) {
	var totals attemptTotals
	err := tx.Model(&model.AttemptRecord{}).
		Select("COUNT(*) AS total, "+correctSumExpr+" AS correct").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	return totals, err
}

// applyAttempt bumps the counters and recomputes the average from the full
// attempt history, so concurrent writers cannot drift the stored average.
func applyAttempt(tx *gorm.DB, userID uint, isCorrect bool) (attemptTotals, error) {
	totals, err := countAttempts(tx, userID)
	if err != nil {
		return totals, err
	}

	correct := 0
	if isCorrect {
		correct = 1
	}

	result := tx.Model(&model.ProgressSummary{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_questions": gorm.Expr("total_questions + ?", 1),
			"correct_count":   gorm.Expr("correct_count + ?", correct),
			"average_score":   util.Percent(totals.Correct, totals.Total),
		})
	if result.Error != nil {
		return totals, result.Error
	}

	// 旧用户可能没有汇总行，按全量记录补建
	if result.RowsAffected == 0 {
		summary := model.ProgressSummary{
			UserID:         userID,
			TotalQuestions: totals.Total,
			CorrectCount:   totals.Correct,
			AverageScore:   util.Percent(totals.Correct, totals.Total),
		}
		if err := tx.Create(&summary).Error; err != nil {
			return totals, err
		}
	}

	return totals, nil
}

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Progress recomputes the report from user_responses and returns the
// materialized summary read in the same transaction.
func (r *ProgressRepository) Progress(ctx context.Context, userID uint) (*model.ProgressReport, *model.ProgressSummary, error) {
	var report model.ProgressReport
	var summary *model.ProgressSummary

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := userExists(tx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return util.ErrUserNotFound
		}

		totals, err := countAttempts(tx, userID)
		if err != nil {
			return err
		}

		var timestamps []time.Time
		if err := tx.Model(&model.AttemptRecord{}).
			Where("user_id = ?", userID).
			Pluck("created_at", &timestamps).Error; err != nil {
			return err
		}

		report = model.ProgressReport{
			TotalQuestoes: totals.Total,
			Acertos:       totals.Correct,
			MediaGeral:    util.Ratio2(totals.Correct, totals.Total),
			DiasEstudo:    distinctDays(timestamps),
		}

		var s model.ProgressSummary
		err = tx.Where("user_id = ?", userID).First(&s).Error
		if err == nil {
			summary = &s
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &report, summary, nil
}

func distinctDays(timestamps []time.Time) int64 {
	days := make(map[string]struct{}, len(timestamps))
	for _, ts := range timestamps {
		days[ts.UTC().Format(util.DateFormat)] = struct{}{}
	}
	return int64(len(days))
}
