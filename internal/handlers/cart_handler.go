package handlers

import (
	"errors"
	"net/http"

	"kion-order-backend/internal/middleware"
	"kion-order-backend/internal/services"
	"kion-order-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	cart := router.Group("/cart", sessionMiddleware.SessionRequired())
	{
		// Get the session's cart
		cart.GET("", h.GetCart)
		// Add one unit of an item
		cart.POST("/items", h.AddToCart)
		// Remove one unit of an item
		cart.DELETE("/items/:item_id", h.RemoveFromCart)
	}
}

// GetCart godoc
// @Summary Get the cart
// @Description Get the cart lines with subtotals, running total and badge count
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.respondCartError(c, err, "Failed to get cart")
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddToCart godoc
// @Summary Add an item to the cart
// @Description Add one unit of a menu item; an existing line is incremented
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Cart item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	cart, err := h.cartService.Add(c.Request.Context(), middleware.GetSessionID(c), req.ItemID)
	if err != nil {
		h.respondCartError(c, err, "Failed to add item to cart")
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart godoc
// @Summary Remove an item from the cart
// @Description Remove one unit of a menu item; the line disappears at zero. Removing an absent item is a no-op.
// @Tags cart
// @Produce json
// @Param item_id path string true "Menu item ID"
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/items/{item_id} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	cart, err := h.cartService.Remove(c.Request.Context(), middleware.GetSessionID(c), c.Param("item_id"))
	if err != nil {
		h.respondCartError(c, err, "Failed to remove item from cart")
		return
	}

	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error, title string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNoVenueSelected):
		status = http.StatusConflict
	case errors.Is(err, services.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusUnauthorized
	}
	c.JSON(status, ErrorResponse{
		Error:   title,
		Message: err.Error(),
	})
}

// Request models
type AddToCartRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}
