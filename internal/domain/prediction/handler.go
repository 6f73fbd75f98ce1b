package prediction

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/triage/triage/internal/domain/patient"
	"github.com/triage/triage/internal/domain/triage"
	"github.com/triage/triage/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/process-visit", h.ProcessVisit)
	api.POST("/evaluate", h.Evaluate)
	api.GET("/predictions", h.ListPredictions)
	api.GET("/predictions/:id", h.GetPrediction)
}

type processVisitRequest struct {
	VisitID uuid.UUID `json:"visit_id"`
}

type processVisitResponse struct {
	PredictionID          uuid.UUID             `json:"prediction_id"`
	VisitID               uuid.UUID             `json:"visit_id"`
	RiskLevel             string                `json:"risk_level"`
	RiskScore             float64               `json:"risk_score"`
	RecommendedDepartment string                `json:"recommended_department"`
	DepartmentScores      map[string]float64    `json:"department_scores"`
	Confidence            triage.Confidence     `json:"confidence"`
	Explainability        triage.Explainability `json:"explainability"`
}

func (h *Handler) ProcessVisit(c echo.Context) error {
	var req processVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.VisitID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "visit_id is required")
	}

	p, decision, err := h.svc.ProcessVisit(c.Request().Context(), req.VisitID)
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "visit not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, processVisitResponse{
		PredictionID:          p.ID,
		VisitID:               req.VisitID,
		RiskLevel:             decision.RiskLevel,
		RiskScore:             decision.RiskScore,
		RecommendedDepartment: decision.PrimaryDepartment,
		DepartmentScores:      decision.DepartmentScores,
		Confidence:            decision.Confidence,
		Explainability:        decision.Explainability,
	})
}

func (h *Handler) Evaluate(c echo.Context) error {
	var enc triage.PatientEncounter
	if err := c.Bind(&enc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	decision, err := h.svc.Evaluate(c.Request().Context(), &enc)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, decision)
}

func (h *Handler) GetPrediction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "prediction not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPredictions(c echo.Context) error {
	pg := pagination.FromContext(c)
	if visitID := c.QueryParam("visit_id"); visitID != "" {
		vid, err := uuid.Parse(visitID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid visit_id")
		}
		items, total, err := h.svc.ListByVisit(c.Request().Context(), vid, pg.Limit, pg.Offset)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
	}
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
