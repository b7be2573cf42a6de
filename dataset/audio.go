package dataset

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

func looksLikeWAV(b []byte) bool {
	return len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WAVE"
}

func looksLikeMP3(b []byte) bool {
	return (len(b) >= 3 && string(b[:3]) == "ID3") ||
		(len(b) >= 2 && b[0] == 0xFF && (b[1]&0xE0) == 0xE0)
}

// mp3ToWAV decodes MP3 audio, downmixes to mono, resamples to the
// given rate, and writes a PCM16 WAV file to outPath.
func mp3ToWAV(data []byte, sampleRate int, outPath string) error {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode mp3: %w", err)
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return fmt.Errorf("read mp3 samples: %w", err)
	}
	// go-mp3 always emits 16-bit stereo.
	if len(raw)%4 != 0 {
		return fmt.Errorf("unexpected MP3 decoded length %d", len(raw))
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
	}

	mono := make([]int16, len(samples)/2)
	for i := range mono {
		l := int(samples[2*i])
		r := int(samples[2*i+1])
		mono[i] = int16((l + r) / 2)
	}

	out := resampleLinear(mono, dec.SampleRate(), sampleRate)
	return writeWAVPCM16Mono(outPath, out, sampleRate)
}

// resampleLinear converts PCM between sample rates by linear
// interpolation.
func resampleLinear(in []int16, inRate, outRate int) []int16 {
	if inRate == outRate || len(in) == 0 {
		return append([]int16(nil), in...)
	}
	ratio := float64(outRate) / float64(inRate)
	outLen := int(math.Round(float64(len(in)) * ratio))
	if outLen <= 1 {
		return []int16{}
	}
	out := make([]int16, outLen)
	for i := 0; i < outLen; i++ {
		srcPos := float64(i) / ratio
		i0 := int(math.Floor(srcPos))
		if i0 >= len(in) {
			i0 = len(in) - 1
		}
		i1 := i0 + 1
		if i1 >= len(in) {
			i1 = len(in) - 1
		}
		f := srcPos - float64(i0)
		v := float64(in[i0])*(1.0-f) + float64(in[i1])*f
		if v > math.MaxInt16 {
			v = math.MaxInt16
		}
		if v < math.MinInt16 {
			v = math.MinInt16
		}
		out[i] = int16(v)
	}
	return out
}

// writeWAVPCM16Mono writes a minimal RIFF/WAVE file with a single PCM16
// mono data chunk.
func writeWAVPCM16Mono(outPath string, pcm []int16, sampleRate int) error {
	return os.WriteFile(outPath, wavBytes(pcm, sampleRate), 0o644)
}

// wavBytes builds a PCM16 mono RIFF/WAVE container in memory.
func wavBytes(pcm []int16, sampleRate int) []byte {
	var buf bytes.Buffer
	dataSize := uint32(len(pcm) * 2)

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36)+dataSize)
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	for _, s := range pcm {
		binary.Write(&buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}
