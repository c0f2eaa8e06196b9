// Package schedule holds the pure date arithmetic behind the daily publish
// cadence: which calendar day's bulletin is canonical right now, which topic
// that day gets, and the deterministic generation seed for the day.
package schedule

import (
	"time"

	"suomicast/internal/app/model"
)

// DateKeyLayout is the store key format for one content day.
const DateKeyLayout = "2006-01-02"

// noonBoundaryHour is the local wall-clock hour at which a new content day
// becomes canonical. Before noon, yesterday's bulletin is still "today's".
const noonBoundaryHour = 12

// EffectiveDateKey resolves the content day for the given wall-clock time.
func EffectiveDateKey(now time.Time) string {
	contentDate := now
	if now.Hour() < noonBoundaryHour {
		contentDate = now.AddDate(0, 0, -1)
	}
	return contentDate.Format(DateKeyLayout)
}

// TopicForDate selects the focus topic for a date key by rotating through the
// fixed topic list on the day of the year. A pure function of the date, so
// every host picks the same topic for the same day.
func TopicForDate(dateKey string) (string, error) {
	date, err := time.Parse(DateKeyLayout, dateKey)
	if err != nil {
		return "", err
	}
	return model.DailyTopics[date.YearDay()%len(model.DailyTopics)], nil
}

// Seed derives a deterministic generation seed from a date key using an
// order-preserving 31-multiplier string hash over int32 arithmetic.
func Seed(dateKey string) int32 {
	var h int32
	for _, c := range dateKey {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return h
}
