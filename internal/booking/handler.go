package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter/internal/api"
	"sportcenter/internal/customer"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrNoBookingsForCustomer):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSlotFull), errors.Is(err, ErrDuplicateSportBooking):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidSelection):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// BookSlot godoc
// @Summary      Book time slot
// @Description  Books one slot for an existing customer. A customer may
// @Description  hold at most one booking per sport, and a slot holds at
// @Description  most three customers.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      BookRequest  true  "Booking selection"
// @Success      201      {object}  Confirmation
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) BookSlot(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	conf, err := h.service.BookSlot(c.Request.Context(), req.CustomerName, req.Sport, req.TimeSlot)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conf)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels one booking identified by id and owning customer.
// @Description  The customer record itself is untouched.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int            true  "Booking ID"
// @Param        request    body      CancelRequest  true  "Owning customer"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), req.CustomerName, bookingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled successfully"})
}

// DeleteCustomer godoc
// @Summary      Delete customer
// @Description  Removes the customer and all of their bookings as one unit.
// @Tags         customers
// @Produce      json
// @Param        name  path      string  true  "Customer name"
// @Success      200   {object}  api.DeleteCustomerResponse
// @Failure      404   {object}  api.ErrorResponse
// @Router       /customers/{name} [delete]
func (h *Handler) DeleteCustomer(c *gin.Context) {
	removed, err := h.service.DeleteCustomer(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.DeleteCustomerResponse{
		Message:         "Customer deleted",
		RemovedBookings: removed,
	})
}

// ListCustomerBookings godoc
// @Summary      List a customer's bookings
// @Tags         bookings
// @Produce      json
// @Param        name  path      string  true  "Customer name"
// @Success      200   {array}   View
// @Failure      404   {object}  api.ErrorResponse
// @Router       /customers/{name}/bookings [get]
func (h *Handler) ListCustomerBookings(c *gin.Context) {
	views, err := h.service.CustomerBookings(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// SearchCustomer godoc
// @Summary      Search customer
// @Description  Looks up a customer by name (case-insensitive) or numeric
// @Description  id and returns their detail plus all bookings.
// @Tags         customers
// @Produce      json
// @Param        name  query     string  false  "Customer name"
// @Param        id    query     int     false  "Customer ID"
// @Success      200   {object}  CustomerDetail
// @Failure      400   {object}  api.ErrorResponse
// @Failure      404   {object}  api.ErrorResponse
// @Router       /search [get]
func (h *Handler) SearchCustomer(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		detail, err := h.service.SearchByName(c.Request.Context(), name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid customer id"})
			return
		}
		detail, err := h.service.SearchByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
		return
	}

	c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name or id query parameter required"})
}

// ListSports godoc
// @Summary      List sports with availability
// @Tags         sports
// @Produce      json
// @Success      200  {array}  SportAvailability
// @Router       /sports [get]
func (h *Handler) ListSports(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.AllAvailability(c.Request.Context()))
}

// SportSlots godoc
// @Summary      Slot availability for one sport
// @Tags         sports
// @Produce      json
// @Param        sportID  path      int  true  "Sport number (1-6)"
// @Success      200      {object}  SportAvailability
// @Failure      400      {object}  api.ErrorResponse
// @Router       /sports/{sportID}/slots [get]
func (h *Handler) SportSlots(c *gin.Context) {
	sportID, err := strconv.Atoi(c.Param("sportID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid sport number"})
		return
	}

	av, err := h.service.SlotAvailability(c.Request.Context(), sportID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, av)
}

// Occupancy godoc
// @Summary      Booked slots summary
// @Description  Occupied cells of the 6x6 grid, grouped per sport.
// @Tags         sports
// @Produce      json
// @Success      200  {array}  SportOccupancy
// @Router       /occupancy [get]
func (h *Handler) Occupancy(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.OccupancySummary(c.Request.Context()))
}
