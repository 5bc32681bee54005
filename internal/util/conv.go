package util

import "strings"

// Ratio2 returns 100*part/total rounded half up to two decimals. The
// rounding is done on integers so exact half-cent values like 23/160 round up.
func Ratio2(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64((20000*part+total)/(2*total)) / 100
}

// RatioHalfUp returns 100*part/total rounded half up to an integer.
func RatioHalfUp(part, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}

// Percent returns 100*part/total, or 0 when total is 0.
func Percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// NormalizeTopic collapses nil, blank and "Geral" into GeneralTopic.
func NormalizeTopic(topic *string) string {
	if topic == nil {
		return GeneralTopic
	}
	t := strings.TrimSpace(*topic)
	if t == "" || t == GeneralTopic {
		return GeneralTopic
	}
	return t
}

// NilIfBlank returns nil for nil or whitespace-only strings.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
