package imports

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/shared/util"
	"resume-builder-backend/summary/engine"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler accepts resume file uploads and turns them into a profile seed.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches import routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports", h.create)
}

type importResponse struct {
	FileName                 string   `json:"fileName"`
	ProfessionalSummaryDraft string   `json:"professionalSummaryDraft"`
	Skills                   []string `json:"skills"`
	ExperienceYears          int      `json:"experienceYears"`
}

func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := extract.Text(c.Request.Context(), data, mimeType, fileName)
	if err != nil {
		metrics.IncImportFailed()
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not extract text from file", nil)
		}
		return
	}

	metrics.IncImport()
	respond.JSON(c, http.StatusCreated, importResponse{
		FileName:                 fileName,
		ProfessionalSummaryDraft: text,
		Skills:                   engine.ExtractSkills(text),
		ExperienceYears:          engine.ExtractExperienceYears(text),
	})
}
