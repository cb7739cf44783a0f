package http

import (
	"context"
	"net/http"
	"strconv"

	"product-catalog/internal/products"
	"product-catalog/internal/products/validation"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	statusSuccess = "success"
	statusError   = "error"
	productParam  = "pid"
)

type ProductService interface {
	ListProducts(ctx context.Context, filter products.Filter, page, limit int) (products.Page, error)
	GetProduct(ctx context.Context, id int64) (products.Product, error)
	CreateProduct(ctx context.Context, in validation.Input) (products.Product, error)
	UpdateProduct(ctx context.Context, id int64, in validation.Input) (products.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type Handler struct {
	service ProductService
}

func NewHandler(svc ProductService) *Handler {
	return &Handler{service: svc}
}

type productResponse struct {
	Status  string           `json:"status" example:"success"`
	Payload products.Product `json:"payload"`
}

type messageResponse struct {
	Status  string `json:"status" example:"success"`
	Payload string `json:"payload" example:"product deleted"`
}

type listProductsResponse struct {
	Status      string             `json:"status" example:"success"`
	Payload     []products.Product `json:"payload"`
	TotalDocs   int64              `json:"totalDocs" example:"42"`
	TotalPages  int                `json:"totalPages" example:"5"`
	Page        int                `json:"page" example:"1"`
	Limit       int                `json:"limit" example:"10"`
	PrevPage    *int               `json:"prevPage"`
	NextPage    *int               `json:"nextPage" example:"2"`
	HasPrevPage bool               `json:"hasPrevPage" example:"false"`
	HasNextPage bool               `json:"hasNextPage" example:"true"`
	PrevLink    *string            `json:"prevLink"`
	NextLink    *string            `json:"nextLink" example:"/products?limit=10&page=2"`
}

// ListProducts godoc
// @Summary      List products with pagination
// @Tags         products
// @Produce      json
// @Param        page      query     int     false  "Page number"     default(1)
// @Param        limit     query     int     false  "Items per page"  default(10)
// @Param        category  query     string  false  "Exact category"
// @Param        status    query     bool    false  "Availability"
// @Param        sort      query     string  false  "Sort by price"   Enums(asc, desc)
// @Success      200       {object}  listProductsResponse
// @Failure      400       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page, err := h.service.ListProducts(c.Request.Context(), filter,
		parseQueryInt(c.Query("page"), defaultPage),
		parseQueryInt(c.Query("limit"), defaultLimit),
	)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(c, page))
}

// GetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        pid  path      int  true  "Product ID"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{pid} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, productResponse{Status: statusSuccess, Payload: product})
}

// CreateProduct godoc
// @Summary      Create a new product
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      validation.Input  true  "Product data"
// @Success      201   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	in, err := bindInput(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, productResponse{Status: statusSuccess, Payload: product})
}

// UpdateProduct godoc
// @Summary      Update a product
// @Description  Fields left out, and blank text fields, keep their stored values.
// @Tags         products
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        pid   path      int               true  "Product ID"
// @Param        body  body      validation.Input  true  "Fields to change"
// @Success      200   {object}  productResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products/{pid} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	in, err := bindInput(c)
	if err != nil {
		// An unknown product is reported ahead of a malformed body.
		if _, getErr := h.service.GetProduct(c.Request.Context(), id); getErr != nil {
			err = getErr
		}
		_ = c.Error(err)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, in)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, productResponse{Status: statusSuccess, Payload: product})
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Security     BearerAuth
// @Produce      json
// @Param        pid  path      int  true  "Product ID"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{pid} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := productID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Status: statusSuccess, Payload: "product deleted"})
}

func bindInput(c *gin.Context) (validation.Input, error) {
	var in validation.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		return validation.Input{}, products.NewInvalidTypes(products.FieldErrors{
			"body": "request body must be a JSON object",
		})
	}
	return in, nil
}

func productID(c *gin.Context) (int64, error) {
	raw := c.Param(productParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, products.NewInvalidParam(productParam, raw)
	}
	return id, nil
}

func parseFilter(c *gin.Context) (products.Filter, error) {
	filter := products.Filter{Category: c.Query("category")}

	if raw := c.Query("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			return products.Filter{}, products.NewInvalidParam("status", raw)
		}
		filter.Status = &status
	}

	switch sort := products.SortOrder(c.Query("sort")); sort {
	case products.SortPriceAsc, products.SortPriceDesc:
		filter.Sort = sort
	}

	return filter, nil
}

func parseQueryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
