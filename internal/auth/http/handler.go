package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"product-catalog/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, auth.User, error)
	Register(ctx context.Context, u auth.User, password string) (auth.User, error)
}

type Handler struct {
	service AuthService
}

func NewHandler(svc AuthService) *Handler {
	return &Handler{service: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ada@shop.test"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

type registerRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100" example:"Ada"`
	LastName  string `json:"last_name" binding:"required,max=100" example:"Lovelace"`
	Email     string `json:"email" binding:"required,email" example:"ada@shop.test"`
	Age       int    `json:"age" binding:"gte=0,lte=150" example:"36"`
	Password  string `json:"password" binding:"required,min=6,max=72" example:"s3cret!"`
}

type loginResponse struct {
	Status string    `json:"status" example:"success"`
	Token  string    `json:"token"`
	User   auth.User `json:"user"`
}

type userResponse struct {
	Status  string    `json:"status" example:"success"`
	Payload auth.User `json:"payload"`
}

type authErrorResponse struct {
	Status string            `json:"status" example:"error"`
	Error  string            `json:"error" example:"Invalid credentials"`
	Cause  map[string]string `json:"cause,omitempty"`
}

// Login godoc
// @Summary      Log in and receive an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  authErrorResponse
// @Failure      401   {object}  authErrorResponse
// @Failure      500   {object}  authErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, authErrorResponse{Status: statusError, Error: "Invalid credentials"})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Status: statusSuccess, Token: token, User: user})
}

// Register godoc
// @Summary      Register a customer account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account data"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  authErrorResponse
// @Failure      409   {object}  authErrorResponse
// @Failure      500   {object}  authErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bindError(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), auth.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Age:       req.Age,
	}, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, authErrorResponse{Status: statusError, Error: "Email already registered"})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{Status: statusSuccess, Payload: user})
}

func bindError(err error) authErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return authErrorResponse{Status: statusError, Error: "Invalid request body"}
	}
	cause := make(map[string]string, len(verrs))
	for _, e := range verrs {
		cause[e.Field()] = fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
	return authErrorResponse{Status: statusError, Error: "Validation failed", Cause: cause}
}

func RegisterRoutes(router *gin.Engine, handler *Handler) {
	group := router.Group("/auth")
	group.POST("/login", handler.Login)
	group.POST("/register", handler.Register)
}
