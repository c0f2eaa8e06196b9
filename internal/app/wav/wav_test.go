package wav

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeaderLayout(t *testing.T) {
	samples := []byte{0x01, 0x02, 0x03, 0x04}
	encoded := Encode(samples, SampleRate, Channels)

	require.Len(t, encoded, 44+len(samples))

	assert.Equal(t, "RIFF", string(encoded[0:4]))
	assert.Equal(t, uint32(36+len(samples)), binary.LittleEndian.Uint32(encoded[4:8]))
	assert.Equal(t, "WAVE", string(encoded[8:12]))
	assert.Equal(t, "fmt ", string(encoded[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(encoded[16:20]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(encoded[20:22]), "audio format must be PCM")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(encoded[22:24]), "mono")
	assert.Equal(t, uint32(24000), binary.LittleEndian.Uint32(encoded[24:28]))
	assert.Equal(t, uint32(24000*1*2), binary.LittleEndian.Uint32(encoded[28:32]), "byte rate")
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(encoded[32:34]), "block align")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(encoded[34:36]), "bit depth")
	assert.Equal(t, "data", string(encoded[36:40]))
	assert.Equal(t, uint32(len(samples)), binary.LittleEndian.Uint32(encoded[40:44]))
	assert.Equal(t, samples, encoded[44:])
}

func TestEncodeEmptySamples(t *testing.T) {
	encoded := Encode(nil, SampleRate, Channels)
	require.Len(t, encoded, 44)
	assert.Equal(t, uint32(36), binary.LittleEndian.Uint32(encoded[4:8]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(encoded[40:44]))
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		name       string
		bytes      int
		sampleRate int
		channels   int
		expected   float64
	}{
		{"one second mono 24k", 24000 * 2, 24000, 1, 1.0},
		{"half second mono 24k", 24000, 24000, 1, 0.5},
		{"one second stereo 48k", 48000 * 2 * 2, 48000, 2, 1.0},
		{"empty", 0, 24000, 1, 0.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Duration(tc.bytes, tc.sampleRate, tc.channels), 1e-9)
		})
	}
}

func TestSampleDataRoundTrip(t *testing.T) {
	samples := make([]byte, 480)
	for i := range samples {
		samples[i] = byte(i % 251)
	}

	encoded := Encode(samples, SampleRate, Channels)
	decoded, err := SampleData(encoded)
	require.NoError(t, err)
	assert.Equal(t, samples, decoded)
}

func TestSampleDataRejectsGarbage(t *testing.T) {
	_, err := SampleData([]byte("not a wav file"))
	assert.Error(t, err)

	encoded := Encode([]byte{1, 2, 3, 4}, SampleRate, Channels)
	encoded[0] = 'X'
	_, err = SampleData(encoded)
	assert.Error(t, err)
}
