package summaries

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/summary/engine"
)

// Handler exposes the summarization engine over HTTP. It holds no state
// beyond the engine itself.
type Handler struct {
	Engine *engine.Engine
}

// NewHandler constructs a Handler.
func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{Engine: eng}
}

// RegisterRoutes attaches summarization routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summaries", h.summarize)
	rg.POST("/projects/description", h.projectDescription)
	rg.POST("/projects/role", h.projectRole)
}

type summarizeRequest struct {
	Projects      []engine.ProjectRecord `json:"projects"`
	OverallYears  float64                `json:"overallYears"`
	AverageRating *int                   `json:"averageRating"`
}

type fieldWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type summarizeResponse struct {
	Summary  engine.SummaryResult `json:"summary"`
	Warnings []fieldWarning       `json:"warnings,omitempty"`
}

func (h *Handler) summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	started := metrics.NowMillis()
	result, err := h.Engine.Summarize(req.Projects, req.OverallYears, req.AverageRating)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInsufficientDetail):
			metrics.IncSummaryRejected()
			respond.Error(c, http.StatusUnprocessableEntity, "insufficient_detail", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to summarize", nil)
		}
		return
	}
	metrics.IncSummaryGenerated()
	metrics.ObserveSummaryDurationMs(metrics.NowMillis() - started)

	respond.JSON(c, http.StatusOK, summarizeResponse{
		Summary:  result,
		Warnings: dateWarnings(req.Projects),
	})
}

// dateWarnings surfaces project date pairs where the end does not follow the
// start. Duration for those pairs is already clamped to zero upstream; the
// warning tells the client which entry to fix.
func dateWarnings(projects []engine.ProjectRecord) []fieldWarning {
	var warnings []fieldWarning
	for i, project := range projects {
		if project.StartDate == nil || project.EndDate == nil {
			continue
		}
		if !project.EndDate.After(*project.StartDate) {
			warnings = append(warnings, fieldWarning{
				Field:   fmt.Sprintf("projects[%d].endDate", i),
				Message: "endDate is not after startDate; duration counted as zero",
			})
		}
	}
	return warnings
}

type projectDescriptionRequest struct {
	Title string `json:"title"`
}

func (h *Handler) projectDescription(c *gin.Context) {
	var req projectDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	description := h.Engine.GenerateProjectDescription(req.Title)
	respond.JSON(c, http.StatusOK, gin.H{
		"title":       req.Title,
		"description": description,
	})
}

type projectRoleRequest struct {
	OverallYears float64 `json:"overallYears"`
	Title        string  `json:"title"`
}

func (h *Handler) projectRole(c *gin.Context) {
	var req projectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	role, err := h.Engine.GenerateProjectRole(req.OverallYears, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrMissingPrerequisite):
			respond.Error(c, http.StatusBadRequest, "missing_prerequisite", "title is required before generating a role", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate role", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"title": req.Title,
		"role":  role,
	})
}
