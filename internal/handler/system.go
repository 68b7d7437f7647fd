package handler

import (
	"net/http"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/labstack/echo/v4"
)

type SystemHandler struct {
	Handler
}

func NewSystemHandler(s *server.Server) *SystemHandler {
	return &SystemHandler{
		Handler: NewHandler(s),
	}
}

// Root tells a caller what is listening and where the docs are.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.RootResponse{
		Message: "V1 API is running",
		Version: config.Version,
		Docs:    "/docs",
	})
}
