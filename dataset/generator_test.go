package dataset

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/llm/openai"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
)

// stubSpeaker returns a small valid WAV for every utterance.
type stubSpeaker struct {
	err   error
	calls int
}

func (s *stubSpeaker) Speech(ctx context.Context, req openai.SpeechRequest) ([]byte, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return wavBytes([]int16{0, 100, -100, 200}, 16000), nil
}

func TestGenerate(t *testing.T) {
	outDir := t.TempDir()
	tts := &stubSpeaker{}
	g := NewGenerator(tts, GeneratorConfig{OutputDir: outDir, SamplesPerIntent: 2}, logger.NewDefault("test"))

	ds, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// 5 intents x 2 languages x 2 samples
	if ds.Metadata.TotalSamples != 20 {
		t.Errorf("TotalSamples = %d, want 20", ds.Metadata.TotalSamples)
	}
	if len(ds.Samples) != 20 {
		t.Errorf("len(Samples) = %d, want 20", len(ds.Samples))
	}
	if tts.calls != 20 {
		t.Errorf("speaker called %d times, want 20", tts.calls)
	}
	if len(ds.Metadata.Intents) != 5 {
		t.Errorf("Intents = %v, want 5 entries", ds.Metadata.Intents)
	}
	if len(ds.Metadata.Languages) != 2 {
		t.Errorf("Languages = %v, want [en es]", ds.Metadata.Languages)
	}

	// Every sample file exists and is a WAV.
	for _, sample := range ds.Samples {
		data, err := os.ReadFile(sample.Path)
		if err != nil {
			t.Fatalf("read %s: %v", sample.Path, err)
		}
		if !looksLikeWAV(data) {
			t.Errorf("%s is not a WAV file", sample.Filename)
		}
	}

	// The metadata index round-trips.
	metaData, err := os.ReadFile(filepath.Join(outDir, metadataFilename))
	if err != nil {
		t.Fatalf("read metadata: %v", err)
	}
	var fromDisk Dataset
	if err := json.Unmarshal(metaData, &fromDisk); err != nil {
		t.Fatalf("unmarshal metadata: %v", err)
	}
	if fromDisk.Metadata.TotalSamples != ds.Metadata.TotalSamples {
		t.Errorf("metadata on disk disagrees: %d != %d", fromDisk.Metadata.TotalSamples, ds.Metadata.TotalSamples)
	}
}

func TestGenerateTTSError(t *testing.T) {
	tts := &stubSpeaker{err: errors.New("synthesis unavailable")}
	g := NewGenerator(tts, GeneratorConfig{OutputDir: t.TempDir()}, logger.NewDefault("test"))

	if _, err := g.Generate(context.Background()); err == nil {
		t.Fatal("expected error when synthesis fails")
	}
}

func TestWriteWAVPCM16Mono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	pcm := []int16{0, 1000, -1000, 32767, -32768}
	if err := writeWAVPCM16Mono(path, pcm, 16000); err != nil {
		t.Fatalf("writeWAVPCM16Mono() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !looksLikeWAV(data) {
		t.Fatal("output missing RIFF/WAVE markers")
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 16000 {
		t.Errorf("sample rate in header = %d, want 16000", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels in header = %d, want 1", got)
	}
	wantDataSize := uint32(len(pcm) * 2)
	if got := binary.LittleEndian.Uint32(data[40:44]); got != wantDataSize {
		t.Errorf("data size in header = %d, want %d", got, wantDataSize)
	}
	if len(data) != 44+int(wantDataSize) {
		t.Errorf("file size = %d, want %d", len(data), 44+wantDataSize)
	}
}

func TestResampleLinear(t *testing.T) {
	in := []int16{0, 100, 200, 300, 400, 500, 600, 700}

	half := resampleLinear(in, 16000, 8000)
	if len(half) != 4 {
		t.Errorf("downsample len = %d, want 4", len(half))
	}

	double := resampleLinear(in, 8000, 16000)
	if len(double) != 16 {
		t.Errorf("upsample len = %d, want 16", len(double))
	}

	same := resampleLinear(in, 16000, 16000)
	if !bytes.Equal(int16ToBytes(same), int16ToBytes(in)) {
		t.Error("same-rate resample should be identity")
	}

	if got := resampleLinear(nil, 8000, 16000); len(got) != 0 {
		t.Errorf("empty input should stay empty, got %d samples", len(got))
	}
}

func int16ToBytes(in []int16) []byte {
	out := make([]byte, len(in)*2)
	for i, s := range in {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func TestFormatSniffing(t *testing.T) {
	if !looksLikeWAV([]byte("RIFF1234WAVEfmt ")) {
		t.Error("RIFF/WAVE header not recognized")
	}
	if looksLikeWAV([]byte("not audio")) {
		t.Error("non-WAV recognized as WAV")
	}
	if !looksLikeMP3([]byte{0xFF, 0xFB, 0x90, 0x00}) {
		t.Error("MP3 frame sync not recognized")
	}
	if !looksLikeMP3([]byte("ID3\x04rest")) {
		t.Error("ID3 header not recognized")
	}
	if looksLikeMP3([]byte("RIFF")) {
		t.Error("WAV recognized as MP3")
	}
}
