// Package progress holds the pure arithmetic behind learning-progress
// tracking: the monotonic percentage, completion ratios and study streaks.
package progress

import (
	"math"
	"sort"
	"time"
)

// Clamp bounds a reported percentage into [0, 100]
func Clamp(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Advance returns the progress percentage after a lesson reports a new
// value. Progress never decreases: the result is the maximum of the current
// value and the clamped reported value.
func Advance(current, reported int) int {
	reported = Clamp(reported)
	if reported > current {
		return reported
	}
	return current
}

// CompletionPercent returns completed out of total as a rounded percentage
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StreakDays counts consecutive days of activity ending today or yesterday.
// days may be unsorted and contain duplicates.
func StreakDays(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	seen := make(map[string]bool, len(days))
	unique := make([]time.Time, 0, len(days))
	for _, d := range days {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		key := day.Format("2006-01-02")
		if !seen[key] {
			seen[key] = true
			unique = append(unique, day)
		}
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i].After(unique[j]) })

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	// A streak is still alive if the last activity was yesterday
	if unique[0].Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	streak := 1
	for i := 1; i < len(unique); i++ {
		if unique[i-1].Sub(unique[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}
