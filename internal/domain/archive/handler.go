package archive

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vineland/vsms-api/pkg/pagination"
)

// Fetcher supplies the stored archive; any store backend satisfies it.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]StoredRecord, error)
}

// ReportRenderer regenerates the printable report for a stored record.
type ReportRenderer interface {
	Render(rec StoredRecord) ([]byte, error)
}

type Handler struct {
	store    Fetcher
	renderer ReportRenderer
}

func NewHandler(store Fetcher, renderer ReportRenderer) *Handler {
	return &Handler{store: store, renderer: renderer}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/assessments", h.ListAssessments)
	api.GET("/assessments/export.xlsx", h.ExportAssessments)
	api.GET("/assessments/:assessmentId/report.pdf", h.AssessmentReport)
}

// ListAssessments returns the archive, optionally filtered by the
// history search. Without a search term the whole (paginated) archive is
// listed; with a mode but an empty term nothing matches, mirroring the
// form's behavior of never dumping the archive on an empty query.
func (h *Handler) ListAssessments(c echo.Context) error {
	records, err := h.store.FetchAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	if mode := c.QueryParam("mode"); mode != "" {
		records = Search(records, Mode(mode), c.QueryParam("search"))
	}

	pg := pagination.FromContext(c)
	total := len(records)
	if pg.Offset < len(records) {
		records = records[pg.Offset:]
	} else {
		records = nil
	}
	if len(records) > pg.Limit {
		records = records[:pg.Limit]
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, pg.Limit, pg.Offset))
}

func (h *Handler) ExportAssessments(c echo.Context) error {
	records, err := h.store.FetchAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	data, err := ExportXLSX(records)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="vsms-assessments.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (h *Handler) AssessmentReport(c echo.Context) error {
	id := c.Param("assessmentId")
	records, err := h.store.FetchAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	for _, rec := range records {
		if rec.AssessmentID != id {
			continue
		}
		data, err := h.renderer.Render(rec)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="vsms-%s.pdf"`, rec.PatientID))
		return c.Blob(http.StatusOK, "application/pdf", data)
	}
	return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
}
