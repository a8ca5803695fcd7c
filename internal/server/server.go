package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sportcenter/internal/booking"
	"sportcenter/internal/config"
	"sportcenter/internal/customer"
	"sportcenter/internal/validation"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, customerService *customer.Service, bookingService *booking.Service) (*Server, error) {
	gin.SetMode(cfg.GinMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			return nil, err
		}
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		corsMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	customerHandler := customer.NewHandler(customerService)
	bookingHandler := booking.NewHandler(bookingService)

	router.POST("/customers", customerHandler.Register)
	router.GET("/customers", customerHandler.ListCustomers)
	router.GET("/customers/:name/bookings", bookingHandler.ListCustomerBookings)
	router.DELETE("/customers/:name", bookingHandler.DeleteCustomer)

	router.POST("/bookings", bookingHandler.BookSlot)
	router.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)

	router.GET("/search", bookingHandler.SearchCustomer)

	router.GET("/sports", bookingHandler.ListSports)
	router.GET("/sports/:sportID/slots", bookingHandler.SportSlots)
	router.GET("/occupancy", bookingHandler.Occupancy)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		config: cfg,
	}, nil
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
