// Package api exposes the persona catalogue and the scenario-generation
// action over HTTP. Handlers are stateless; each generation request builds a
// fresh effective persona and issues one blocking model call.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/accesslens/accesslens/internal/apperr"
	"github.com/accesslens/accesslens/internal/logger"
	"github.com/accesslens/accesslens/internal/persona"
	"github.com/accesslens/accesslens/internal/scenario"
	"github.com/accesslens/accesslens/internal/whatif"
)

// Generator is the single operation the handler needs from the scenario
// engine; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, per persona.Persona, schemeCategory string) (string, error)
}

type Handler struct {
	store  *persona.Store
	engine Generator
	log    logger.Logger
}

func NewHandler(store *persona.Store, engine Generator, log logger.Logger) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
		log:    log.With(map[string]interface{}{"component": "api"}),
	}
}

// Register wires the handler's routes onto the router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/api/personas", h.ListPersonas)
	r.GET("/api/categories", h.ListCategories)
	r.GET("/api/whatif-options", h.ListWhatIfOptions)
	r.POST("/api/generate", h.Generate)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ListPersonas returns the loaded personas in file order.
func (h *Handler) ListPersonas(c *gin.Context) {
	personas := h.store.List()
	views := make([]PersonaView, 0, len(personas))
	for _, p := range personas {
		views = append(views, personaView(p))
	}
	c.JSON(http.StatusOK, gin.H{"personas": views})
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": scenario.SchemeCategories})
}

func (h *Handler) ListWhatIfOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": whatif.Keys()})
}

// Generate runs one simulation: resolve the persona, apply the optional
// What-If override to a copy, compose the prompt and call the model. The
// stored persona set is never modified.
func (h *Handler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	if !scenario.ValidCategory(req.SchemeCategory) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown scheme category", Details: req.SchemeCategory})
		return
	}

	base, ok := h.store.Get(req.PersonaLabel)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown persona label", Details: req.PersonaLabel})
		return
	}

	if req.WhatIf.Enabled {
		if _, ok := whatif.Lookup(req.WhatIf.Option); !ok {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown what-if option", Details: req.WhatIf.Option})
			return
		}
	}

	effective, applied := whatif.Apply(base, req.WhatIf.Enabled, req.WhatIf.Option)

	start := time.Now()
	narrative, err := h.engine.Generate(c.Request.Context(), effective, req.SchemeCategory)
	if err != nil {
		h.renderGenerationError(c, err)
		return
	}

	h.log.Info("scenario generated", map[string]interface{}{
		"schemeCategory": req.SchemeCategory,
		"whatIfApplied":  applied != nil,
		"durationMs":     time.Since(start).Milliseconds(),
	})

	resp := GenerateResponse{
		ScenarioID:       uuid.New().String(),
		PersonaLabel:     req.PersonaLabel,
		SchemeCategory:   req.SchemeCategory,
		EffectivePersona: personaView(effective),
		Narrative:        narrative,
		GeneratedAt:      timestamp(),
	}
	if applied != nil {
		resp.WhatIfApplied = &AppliedView{
			Field:        applied.Field,
			FieldLabel:   persona.FieldLabels[applied.Field],
			Value:        applied.Value,
			ValueDisplay: persona.FormatEnumValue(applied.Value),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// renderGenerationError maps tagged error kinds onto HTTP statuses. Model
// failures stay generic with the underlying text appended; nothing is
// retried or distinguished further.
func (h *Handler) renderGenerationError(c *gin.Context, err error) {
	h.log.WithError(err).Error("scenario generation failed", nil)

	switch apperr.KindOf(err) {
	case apperr.KindConfigMissing:
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "scenario generation is not configured",
			Details: err.Error(),
		})
	case apperr.KindResourceMissing:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "a required resource is missing",
			Details: err.Error(),
		})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "the scenario generation could not be completed",
			Details: err.Error(),
		})
	}
}
