package service

import (
	"estudo_backend/internal/model"
	"estudo_backend/internal/util"
)

// BuildPerformanceReport shapes a snapshot into the report. Counts are summed
// as integers and each tier is rounded once from raw counts:
// topic/subject/difficulty to two decimals, overall accuracy to an integer.
func BuildPerformanceReport(snapshot *model.PerformanceSnapshot) *model.PerformanceReport {
	report := &model.PerformanceReport{
		BySubject:       make([]model.SubjectPerformance, 0),
		RecentResponses: make([]model.RecentResponse, 0),
		ByDifficulty:    make([]model.DifficultyPerformance, 0),
	}
	if snapshot == nil {
		return report
	}

	// 按科目聚合，保持快照中的科目顺序
	index := make(map[string]int)
	for _, row := range snapshot.SubjectTopics {
		i, ok := index[row.Subject]
		if !ok {
			i = len(report.BySubject)
			index[row.Subject] = i
			report.BySubject = append(report.BySubject, model.SubjectPerformance{
				Subject: row.Subject,
				Topics:  make(map[string]model.TopicStats),
			})
		}

		subject := &report.BySubject[i]
		subject.TotalResponses += row.TotalResponses
		subject.CorrectResponses += row.CorrectResponses

		// null, "" and "Geral" arrive as separate rows and merge here
		topic := util.NormalizeTopic(row.Topic)
		stats := subject.Topics[topic]
		stats.TotalResponses += row.TotalResponses
		stats.CorrectResponses += row.CorrectResponses
		subject.Topics[topic] = stats
	}

	for i := range report.BySubject {
		subject := &report.BySubject[i]
		for name, stats := range subject.Topics {
			stats.Accuracy = util.Ratio2(stats.CorrectResponses, stats.TotalResponses)
			subject.Topics[name] = stats
		}
		subject.CalculatedAccuracy = util.Ratio2(subject.CorrectResponses, subject.TotalResponses)

		report.TotalResponses += subject.TotalResponses
		report.CorrectResponses += subject.CorrectResponses
	}
	report.TotalSubjects = len(report.BySubject)
	report.Accuracy = util.RatioHalfUp(report.CorrectResponses, report.TotalResponses)

	for _, row := range snapshot.Difficulties {
		report.ByDifficulty = append(report.ByDifficulty, model.DifficultyPerformance{
			Difficulty: row.Difficulty,
			Total:      row.TotalResponses,
			Accuracy:   util.Ratio2(row.CorrectResponses, row.TotalResponses),
		})
	}

	report.RecentResponses = append(report.RecentResponses, snapshot.Recent...)
	return report
}
