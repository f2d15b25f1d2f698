package drone

import (
	"fmt"
	"io"
	"math"
)

const wavHeaderSize = 44

// EncodeWAV encodes mono samples in [-1, 1] as a 16-bit PCM WAV file.
// Out-of-range samples are clipped.
func EncodeWAV(samples []float32, sampleRate int) []byte {
	dataSize := len(samples) * 2
	data := make([]byte, wavHeaderSize+dataSize)
	writeWavHeader(data, dataSize, sampleRate)

	for i, s := range samples {
		v := int16(math.Round(clip(float64(s)) * 32767))
		data[wavHeaderSize+i*2] = byte(v)
		data[wavHeaderSize+i*2+1] = byte(uint16(v) >> 8)
	}
	return data
}

// WriteWAV writes EncodeWAV's output to w.
func WriteWAV(w io.Writer, samples []float32, sampleRate int) error {
	if _, err := w.Write(EncodeWAV(samples, sampleRate)); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// writeWavHeader writes a mono 16-bit PCM header.
func writeWavHeader(data []byte, dataSize, sampleRate int) {
	copy(data[0:4], "RIFF")
	writeUint32LE(data, 4, uint32(dataSize+36))
	copy(data[8:12], "WAVE")

	copy(data[12:16], "fmt ")
	writeUint32LE(data, 16, 16)                   // Sub-chunk size
	writeUint16LE(data, 20, 1)                    // PCM
	writeUint16LE(data, 22, 1)                    // Mono
	writeUint32LE(data, 24, uint32(sampleRate))   // Sample rate
	writeUint32LE(data, 28, uint32(sampleRate*2)) // Byte rate
	writeUint16LE(data, 32, 2)                    // Block align
	writeUint16LE(data, 34, 16)                   // Bits per sample

	copy(data[36:40], "data")
	writeUint32LE(data, 40, uint32(dataSize))
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}

func writeUint32LE(data []byte, offset int, value uint32) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
	data[offset+2] = byte(value >> 16)
	data[offset+3] = byte(value >> 24)
}
