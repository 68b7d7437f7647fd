package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	productService *service.ProductService
}

func NewProductHandler(s *server.Server, productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		productService: productService,
	}
}

func (h *ProductHandler) SearchProducts(c echo.Context, req *model.SearchProductsRequest) (*model.SearchProductsResponse, error) {
	return h.productService.Search(c.Request().Context(), req)
}
