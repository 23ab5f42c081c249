package resumes

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/respond"
)

const maxResumeSize = 1 << 20 // 1MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/resumes/:phoneNumber", h.put)
	rg.POST("/resumes", h.create)
	rg.GET("/resumes/:phoneNumber", h.get)
	rg.GET("/resumes/:phoneNumber/qr", h.qr)
}

type putResumeRequest struct {
	ResumeData    json.RawMessage `json:"resumeData"`
	QRCodeDataURL string          `json:"qrCodeDataUrl"`
}

func (h *Handler) put(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	c.Set("phoneNumber", phoneNumber)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeSize)

	var req putResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Save(c.Request.Context(), phoneNumber, req.ResumeData, req.QRCodeDataURL)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	metrics.IncResumeSaved()
	respond.JSON(c, http.StatusOK, toResponse(resume))
}

type createResumeRequest struct {
	MobileNumber  string          `json:"mobileNumber"`
	ResumeData    json.RawMessage `json:"resumeData"`
	QRCodeDataURL string          `json:"qrCodeDataUrl"`
}

// create accepts the flat form the original wizard posted, with the phone
// number in the body instead of the path.
func (h *Handler) create(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResumeSize)

	var req createResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("phoneNumber", req.MobileNumber)

	resume, err := h.Svc.Save(c.Request.Context(), req.MobileNumber, req.ResumeData, req.QRCodeDataURL)
	if err != nil {
		h.writeSaveError(c, err)
		return
	}

	metrics.IncResumeSaved()
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	c.Set("phoneNumber", phoneNumber)

	resume, err := h.Svc.Get(c.Request.Context(), phoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidPhone):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) qr(c *gin.Context) {
	phoneNumber := c.Param("phoneNumber")
	c.Set("phoneNumber", phoneNumber)

	dataURL, err := h.Svc.QRCode(c.Request.Context(), phoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidPhone):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate qr code", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"phoneNumber":   phoneNumber,
		"qrCodeDataUrl": dataURL,
	})
}

func (h *Handler) writeSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save resume", nil)
	}
}
