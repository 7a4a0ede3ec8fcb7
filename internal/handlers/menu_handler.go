package handlers

import (
	"net/http"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/middleware"
	"kion-order-backend/internal/models"
	"kion-order-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	catalog        *catalog.Store
	sessionService *services.SessionService
}

func NewMenuHandler(catalog *catalog.Store, sessionService *services.SessionService) *MenuHandler {
	return &MenuHandler{
		catalog:        catalog,
		sessionService: sessionService,
	}
}

// RegisterRoutes registers the menu routes
func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.GET("/menu", sessionMiddleware.SessionRequired(), h.GetMenu)
}

// GetMenu godoc
// @Summary Browse the menu
// @Description Get the categorized menu, optionally filtered by a free-text query. An empty result is a normal outcome, not an error.
// @Tags menu
// @Produce json
// @Param q query string false "Search query (matches item name or description, case-insensitive)"
// @Success 200 {object} MenuResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	sess, err := h.sessionService.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Session not found",
			Message: err.Error(),
		})
		return
	}
	if sess.VenueID == "" {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "No venue selected",
			Message: services.ErrNoVenueSelected.Error(),
		})
		return
	}

	query := c.Query("q")
	categories := h.catalog.Filter(query)
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, MenuResponse{
		Query:      query,
		Categories: categories,
	})
}

type MenuResponse struct {
	Query      string            `json:"query"`
	Categories []models.Category `json:"categories"`
}
