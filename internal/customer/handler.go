package customer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportcenter/internal/api"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register new customer
// @Description  Validates contact fields and creates a customer record.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Customer registration data"
// @Success      201      {object}  Customer
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /customers [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateCustomerName):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone), errors.Is(err, ErrInvalidAddress):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to register customer"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListCustomers godoc
// @Summary      List customers
// @Description  Returns all registered customers in registration order.
// @Tags         customers
// @Produce      json
// @Success      200  {array}  Customer
// @Router       /customers [get]
func (h *Handler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}
