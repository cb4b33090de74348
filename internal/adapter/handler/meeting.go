package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-summarizer/meeting-summarizer/errors"
	"github.com/meeting-summarizer/meeting-summarizer/internal/adapter/dto"
	meetinguse "github.com/meeting-summarizer/meeting-summarizer/internal/usecase/meeting"
)

// MeetingHandler handles the upload pipeline endpoints
type MeetingHandler struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meetinguse.Service, logger *zap.Logger) *MeetingHandler {
	return &MeetingHandler{svc: svc, logger: logger}
}

// Summarize processes one uploaded meeting recording
// @Summary      Summarize a meeting recording
// @Description  Accepts one MP3 file, transcribes it, generates a summary with action items and stores the result
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Meeting recording (MP3)"
// @Success      200  {object}  dto.SummarizeResponse
// @Failure      400  {object}  dto.ErrorResponse  "Missing file, empty filename or unsupported format"
// @Failure      500  {object}  dto.ErrorResponse  "Provider, parse or storage failure"
// @Router       /summarize [post]
func (h *MeetingHandler) Summarize(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrNoFileProvided())
	}

	files := form.File["file"]
	if len(files) == 0 {
		// A part named "file" without a filename is parsed as a plain
		// form value: the field was sent but no file was chosen.
		if _, ok := form.Value["file"]; ok {
			return HandleError(h.logger, c, errors.ErrNoFileSelected())
		}
		return HandleError(h.logger, c, errors.ErrNoFileProvided())
	}

	fileHeader := files[0]
	if fileHeader.Filename == "" {
		return HandleError(h.logger, c, errors.ErrNoFileSelected())
	}
	if !strings.HasSuffix(fileHeader.Filename, ".mp3") {
		return HandleError(h.logger, c, errors.ErrUnsupportedFormat())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	if h.logger != nil {
		h.logger.Info("processing upload",
			zap.String("request_id", getRequestID(c)),
			zap.String("filename", fileHeader.Filename),
			zap.Int64("size", fileHeader.Size),
		)
	}

	result, err := h.svc.ProcessUpload(c.Request().Context(), fileHeader.Filename, src)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.SummarizeResponse{
		Transcript:  result.Transcript,
		Summary:     result.Summary,
		ActionItems: result.ActionItems,
		MeetingID:   result.MeetingID,
	})
}

// GetMeeting returns a stored meeting record
// @Summary      Get a meeting record
// @Description  Read-only lookup of one processed meeting by ID
// @Tags         Meetings
// @Produce      json
// @Param        id   path      integer  true  "Meeting ID"
// @Success      200  {object}  dto.MeetingResponse
// @Failure      400  {object}  dto.ErrorResponse  "Invalid meeting ID"
// @Failure      404  {object}  dto.ErrorResponse  "Meeting not found"
// @Router       /v1/meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting ID"))
	}

	record, err := h.svc.GetMeeting(c.Request().Context(), uint(id))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, dto.MeetingResponse{
		ID:          record.ID,
		Filename:    record.Filename,
		Transcript:  record.Transcript,
		Summary:     record.Summary,
		ActionItems: record.ActionItems,
		CreatedAt:   record.CreatedAt,
	})
}
