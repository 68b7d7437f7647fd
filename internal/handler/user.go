package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

// GetUser is a POST so that callers without an id can still send a body.
func (h *UserHandler) GetUser(c echo.Context, req *model.GetUserRequest) (*model.User, error) {
	return h.userService.Get(c.Request().Context(), req)
}
