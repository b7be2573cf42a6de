// Package api exposes the voice pipeline over HTTP: an audio upload
// endpoint that runs the full pipeline and returns the structured
// result, plus the static demo page.
package api

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jeevana-bhumireddy/healthcare-voice-agent/agent"
	apperrors "github.com/jeevana-bhumireddy/healthcare-voice-agent/errors"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/logger"
	"github.com/jeevana-bhumireddy/healthcare-voice-agent/server"
)

// Processor runs the audio pipeline. *agent.Agent satisfies it; tests
// substitute stubs.
type Processor interface {
	Process(ctx context.Context, audioPath string) (*agent.ProcessingResult, error)
}

// Config holds handler configuration.
type Config struct {
	// UploadDir is where uploaded audio is spooled during processing.
	UploadDir string
	// StaticDir holds the demo page assets. Empty disables static
	// serving.
	StaticDir string
}

// Handler holds the HTTP handlers for the voice agent API.
type Handler struct {
	processor Processor
	cfg       Config
	log       *logger.Logger
}

// NewHandler creates a Handler around the given pipeline processor.
func NewHandler(p Processor, cfg Config, log *logger.Logger) *Handler {
	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}
	return &Handler{
		processor: p,
		cfg:       cfg,
		log:       log.WithComponent("api"),
	}
}

// Register mounts the API routes on the Gin engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.POST("/process-audio/", h.ProcessAudio)
	if h.cfg.StaticDir != "" {
		engine.Static("/static", h.cfg.StaticDir)
		engine.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(h.cfg.StaticDir, "index.html"))
		})
	}
}

// ProcessAudio accepts a multipart audio upload in the "audio_file"
// field, spools it to a temp file, runs the pipeline, and returns the
// structured result. The temp file is removed whether or not the
// pipeline succeeds.
func (h *Handler) ProcessAudio(c *gin.Context) {
	log := h.log.WithContext(c.Request.Context())

	file, err := c.FormFile("audio_file")
	if err != nil {
		server.RespondWithError(c, apperrors.UploadError("missing audio_file field", err))
		return
	}

	// Temp name keeps the original extension so the transcription
	// backend can sniff the container format.
	tempPath := filepath.Join(h.cfg.UploadDir, fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename)))

	// Registered before the save so a partial write is cleaned up too.
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove temp upload", logger.ErrorFields("cleanup", err))
		}
	}()

	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		server.RespondWithError(c, apperrors.UploadError("failed to save upload", err))
		return
	}

	log.Info("processing upload", logger.Fields(
		logger.FieldAudioPath, tempPath,
		"filename", file.Filename,
		"size_bytes", file.Size,
	))

	result, err := h.processor.Process(c.Request.Context(), tempPath)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, result)
}
