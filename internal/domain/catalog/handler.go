package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	cat *Catalog
}

func NewHandler(cat *Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/catalog", h.GetCatalog)
}

func (h *Handler) GetCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scheme":     h.cat.Scheme(),
		"age_blocks": h.cat.AgeBlocks(),
	})
}
