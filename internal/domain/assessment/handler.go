package assessment

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vineland/vsms-api/internal/domain/patient"
	"github.com/vineland/vsms-api/internal/domain/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.SubmitAssessment)
	api.GET("/patients/next-id", h.NextPatientID)
}

// SubmitRequest is the submission payload: the demographic block plus
// one response value per answered item, keyed by item id.
type SubmitRequest struct {
	patient.Info
	Responses map[int]response.Value `json:"responses"`
}

func (h *Handler) SubmitAssessment(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess := NewSession(h.svc.Catalog())
	sess.Info = req.Info
	for id, v := range req.Responses {
		if err := sess.Responses.Set(id, v); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	rec, err := h.svc.Submit(c.Request().Context(), sess)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return echo.NewHTTPError(http.StatusBadRequest, verr.Message)
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) NextPatientID(c echo.Context) error {
	id, err := h.svc.NextPatientID(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"patient_id": id})
}
