// Package transcript derives segment timing for generated bulletins. The
// synthesis call returns one audio stream for the whole script, so per-segment
// intervals are allocated proportionally to text length.
package transcript

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/samber/lo"

	"suomicast/internal/app/model"
)

// weight is the allocation weight of one line: rune count + 1, so an empty
// line still receives a non-zero share.
func weight(line model.ScriptLine) int {
	return utf8.RuneCountInString(line.Text) + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Allocate distributes totalDuration seconds across the script lines in
// order. Segments are contiguous and monotonic: each segment starts where the
// previous one ended, the first starts at 0 and the last ends at
// totalDuration (up to two-decimal rounding). Segment ids are positional.
func Allocate(lines []model.ScriptLine, totalDuration float64) []model.TranscriptSegment {
	if len(lines) == 0 {
		return []model.TranscriptSegment{}
	}

	totalWeight := lo.SumBy(lines, weight)

	segments := make([]model.TranscriptSegment, 0, len(lines))
	currentTime := 0.0
	for i, line := range lines {
		segmentDuration := float64(weight(line)) / float64(totalWeight) * totalDuration
		startTime := round2(currentTime)
		endTime := round2(currentTime + segmentDuration)
		currentTime = endTime

		segments = append(segments, model.TranscriptSegment{
			ID:        fmt.Sprintf("seg-%d", i),
			StartTime: startTime,
			EndTime:   endTime,
			Text:      line.Text,
		})
	}
	return segments
}

// ActiveSegment returns the first segment whose [start, end) interval
// contains t, or nil when t falls outside the transcript. With contiguous
// segments at most one can match.
func ActiveSegment(segments []model.TranscriptSegment, t float64) *model.TranscriptSegment {
	for i := range segments {
		if segments[i].Contains(t) {
			return &segments[i]
		}
	}
	return nil
}
