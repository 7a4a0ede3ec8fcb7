package handlers

import (
	"net/http"

	"kion-order-backend/internal/catalog"
	"kion-order-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	catalog *catalog.Store
}

func NewVenueHandler(catalog *catalog.Store) *VenueHandler {
	return &VenueHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *VenueHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/info", h.GetInfo)
	router.GET("/venues", h.GetVenues)
	router.GET("/venues/:id", h.GetVenueByID)
}

// GetInfo godoc
// @Summary Get brand info
// @Description Get business metadata, opening hours and the venue directory
// @Tags venues
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /info [get]
func (h *VenueHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Business: h.catalog.Business(),
		Hours:    h.catalog.Hours(),
		Venues:   h.catalog.Venues(),
	})
}

// GetVenues godoc
// @Summary List venues
// @Description List all venues available for ordering
// @Tags venues
// @Produce json
// @Success 200 {array} models.Venue
// @Router /venues [get]
func (h *VenueHandler) GetVenues(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Venues())
}

// GetVenueByID godoc
// @Summary Get venue by ID
// @Description Get a single venue's details
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} models.Venue
// @Failure 404 {object} ErrorResponse
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenueByID(c *gin.Context) {
	venue, ok := h.catalog.VenueByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Venue not found",
			Message: "No venue with id " + c.Param("id"),
		})
		return
	}
	c.JSON(http.StatusOK, venue)
}

type InfoResponse struct {
	Business models.Business     `json:"business"`
	Hours    models.OpeningHours `json:"hours"`
	Venues   []models.Venue      `json:"venues"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
