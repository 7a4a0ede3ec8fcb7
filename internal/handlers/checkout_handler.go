package handlers

import (
	"errors"
	"net/http"

	"kion-order-backend/internal/middleware"
	"kion-order-backend/internal/services"
	"kion-order-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	orderService    *services.OrderService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService, orderService *services.OrderService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// RegisterRoutes registers the checkout routes
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	checkout := router.Group("/checkout", sessionMiddleware.SessionRequired())
	{
		checkout.GET("/form", h.GetForm)
		checkout.PUT("/form", h.UpdateForm)
		checkout.POST("", h.Compose)
	}
}

// GetForm godoc
// @Summary Get the delivery form
// @Description Get the current checkout form values
// @Tags checkout
// @Produce json
// @Success 200 {object} models.CheckoutForm
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/form [get]
func (h *CheckoutHandler) GetForm(c *gin.Context) {
	form, err := h.checkoutService.GetForm(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to get checkout form")
		return
	}

	c.JSON(http.StatusOK, form)
}

// UpdateForm godoc
// @Summary Update the delivery form
// @Description Apply partial updates to the checkout form; omitted fields are untouched
// @Tags checkout
// @Accept json
// @Produce json
// @Param form body services.UpdateFormRequest true "Form field updates"
// @Success 200 {object} models.CheckoutForm
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /checkout/form [put]
func (h *CheckoutHandler) UpdateForm(c *gin.Context) {
	var req services.UpdateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	form, err := h.checkoutService.UpdateForm(c.Request.Context(), middleware.GetSessionID(c), &req)
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to update checkout form")
		return
	}

	c.JSON(http.StatusOK, form)
}

// Compose godoc
// @Summary Compose the order
// @Description Validate the session and build the WhatsApp hand-off: destination number, order text and deep link. Nothing is sent server-side.
// @Tags checkout
// @Produce json
// @Success 200 {object} services.ComposeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Compose(c *gin.Context) {
	order, err := h.orderService.Compose(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.respondCheckoutError(c, err, "Failed to compose order")
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error, title string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNoVenueSelected):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidDinerCount),
		errors.Is(err, services.ErrInvalidReceiptKind):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingDeliveryFields):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusUnauthorized
	}
	c.JSON(status, ErrorResponse{
		Error:   title,
		Message: err.Error(),
	})
}
