package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products. An optional category query filters results.
func (h *ProductHandler) List(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		categoryID, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		products, err := h.facade.ProductsByCategory(c.Request.Context(), categoryID)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, toProductResponses(products))
		return
	}

	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, err := h.facade.CreateProduct(c.Request.Context(), fromProductRequest(req))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	product, err := h.facade.UpdateProduct(c.Request.Context(), id, fromProductRequest(req))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Patch handles PATCH /api/products/:id.
func (h *ProductHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}
	product, err := h.facade.PatchProduct(c.Request.Context(), id, fields)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/products/search?q=term.
func (h *ProductHandler) Search(c *gin.Context) {
	products, err := h.facade.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrMissingField), errors.Is(err, domainErrors.ErrInvalidAmount):
		c.Status(http.StatusBadRequest)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func fromProductRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Brand:       req.Brand,
		Weight:      req.Weight,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Brand:       p.Brand,
		Weight:      p.Weight,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
	}
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}
