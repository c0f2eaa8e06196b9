package transcript

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suomicast/internal/app/model"
)

func lines(texts ...string) []model.ScriptLine {
	ls := make([]model.ScriptLine, len(texts))
	for i, text := range texts {
		speaker := model.SpeakerFemale
		if i%2 == 1 {
			speaker = model.SpeakerMale
		}
		ls[i] = model.ScriptLine{Text: text, Speaker: speaker}
	}
	return ls
}

func TestAllocateContiguousAndBounded(t *testing.T) {
	const total = 93.7
	segments := Allocate(lines(
		"Hyvää päivää, tässä SuomiCastin uutiset.",
		"Tänään puhumme säästä.",
		"Etelä-Suomessa sataa lunta koko viikon.",
		"Kiitos ja kuulemiin.",
	), total)

	require.Len(t, segments, 4)
	assert.Equal(t, 0.0, segments[0].StartTime)
	for i := 1; i < len(segments); i++ {
		assert.Equal(t, segments[i-1].EndTime, segments[i].StartTime,
			"segment %d must start where %d ended", i, i-1)
	}
	assert.InDelta(t, total, segments[len(segments)-1].EndTime, 0.01)

	for i, seg := range segments {
		assert.Greater(t, seg.EndTime, seg.StartTime, "segment %d must have positive length", i)
	}
}

func TestAllocateProportionalToTextLength(t *testing.T) {
	const total = 100.0
	// Weights are rune count + 1: 11, 21, 11.
	segments := Allocate(lines(
		"aaaaaaaaaa",
		"bbbbbbbbbbbbbbbbbbbb",
		"cccccccccc",
	), total)

	require.Len(t, segments, 3)
	sumWeights := 11.0 + 21.0 + 11.0
	assert.InDelta(t, 11.0/sumWeights*total, segments[0].EndTime-segments[0].StartTime, 0.01)
	assert.InDelta(t, 21.0/sumWeights*total, segments[1].EndTime-segments[1].StartTime, 0.01)
	assert.InDelta(t, 11.0/sumWeights*total, segments[2].EndTime-segments[2].StartTime, 0.01)
}

func TestAllocateEmptyLineGetsNonZeroShare(t *testing.T) {
	segments := Allocate(lines("jotain tekstiä", "", "lisää tekstiä"), 30)
	require.Len(t, segments, 3)
	assert.Greater(t, segments[1].EndTime, segments[1].StartTime)
}

func TestAllocateCountsRunesNotBytes(t *testing.T) {
	// "ääää" is 8 bytes but 4 runes; must weigh the same as "aaaa".
	multi := Allocate(lines("ääää", "aaaa"), 10)
	require.Len(t, multi, 2)
	require.Equal(t, 4, utf8.RuneCountInString("ääää"))
	assert.InDelta(t, 5.0, multi[0].EndTime, 0.01)
}

func TestAllocateNoLines(t *testing.T) {
	assert.Empty(t, Allocate(nil, 60))
}

func TestAllocateSegmentIDs(t *testing.T) {
	segments := Allocate(lines("a", "b", "c"), 9)
	require.Len(t, segments, 3)
	assert.Equal(t, "seg-0", segments[0].ID)
	assert.Equal(t, "seg-2", segments[2].ID)
}

func TestActiveSegmentExactlyOneMatch(t *testing.T) {
	segments := Allocate(lines("yksi", "kaksi", "kolme", "neljä"), 40)

	for _, at := range []float64{0, 0.5, 9.99, 10, 25.3, 39.99} {
		matches := 0
		for _, seg := range segments {
			if seg.Contains(at) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "time %.2f must match exactly one segment", at)
	}
}

func TestActiveSegmentOutsideTranscript(t *testing.T) {
	segments := Allocate(lines("yksi", "kaksi"), 20)
	assert.Nil(t, ActiveSegment(segments, -0.01))
	assert.Nil(t, ActiveSegment(segments, 20))
	assert.Nil(t, ActiveSegment(segments, 100))

	require.NotNil(t, ActiveSegment(segments, 0))
	assert.Equal(t, "seg-0", ActiveSegment(segments, 0).ID)
	assert.Equal(t, "seg-1", ActiveSegment(segments, 19.99).ID)
}

func TestActiveSegmentBoundaryBelongsToNext(t *testing.T) {
	segments := Allocate(lines("aaaa", "bbbb"), 10)
	boundary := segments[0].EndTime
	active := ActiveSegment(segments, boundary)
	require.NotNil(t, active)
	assert.Equal(t, "seg-1", active.ID, "half-open intervals: the boundary belongs to the next segment")
}
