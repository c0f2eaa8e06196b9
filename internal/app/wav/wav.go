// Package wav frames raw PCM samples as a minimal RIFF/WAVE file. Synthesized
// speech comes back from the provider as bare 16-bit little-endian samples;
// the 44-byte canonical header makes them a playable, self-contained file.
package wav

import (
	"encoding/binary"
	"fmt"
)

const (
	// SampleRate is the fixed output rate of the speech synthesis call.
	SampleRate = 24000
	// Channels is the channel count of synthesized speech (mono).
	Channels = 1
	// BytesPerSample for 16-bit PCM.
	BytesPerSample = 2

	headerSize = 44
)

// Encode wraps raw 16-bit LE PCM samples in a canonical 44-byte RIFF/WAVE
// header. The input slice is copied, not aliased.
func Encode(samples []byte, sampleRate, channels int) []byte {
	buf := make([]byte, headerSize+len(samples))

	byteRate := sampleRate * channels * BytesPerSample
	blockAlign := channels * BytesPerSample

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(samples)))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM
	binary.LittleEndian.PutUint16(buf[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], 16) // bits per sample
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(samples)))
	copy(buf[headerSize:], samples)

	return buf
}

// Duration returns the playback length in seconds of sampleByteCount bytes of
// raw PCM at the given rate and channel count.
func Duration(sampleByteCount, sampleRate, channels int) float64 {
	return float64(sampleByteCount) / float64(sampleRate*channels*BytesPerSample)
}

// SampleData extracts the raw PCM payload from an encoded WAV file produced
// by Encode. It fails on anything that is not a plain 44-byte-header file.
func SampleData(encoded []byte) ([]byte, error) {
	if len(encoded) < headerSize {
		return nil, fmt.Errorf("wav: file too short (%d bytes)", len(encoded))
	}
	if string(encoded[0:4]) != "RIFF" || string(encoded[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wav: missing RIFF/WAVE markers")
	}
	dataLen := binary.LittleEndian.Uint32(encoded[40:44])
	if int(dataLen) != len(encoded)-headerSize {
		return nil, fmt.Errorf("wav: data length %d does not match payload %d", dataLen, len(encoded)-headerSize)
	}
	return encoded[headerSize:], nil
}
