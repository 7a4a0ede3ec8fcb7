package handlers

import (
	"errors"
	"net/http"

	"kion-order-backend/internal/middleware"
	"kion-order-backend/internal/services"
	"kion-order-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// RegisterRoutes registers the session lifecycle routes
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	router.POST("/sessions", h.CreateSession)

	scoped := router.Group("/session", sessionMiddleware.SessionRequired())
	{
		scoped.GET("", h.GetSession)
		scoped.PUT("/venue", h.SelectVenue)
		scoped.DELETE("/venue", h.ChangeVenue)
	}
}

// CreateSession godoc
// @Summary Start an ordering session
// @Description Create a new empty session and return its id
// @Tags sessions
// @Produce json
// @Success 201 {object} CreateSessionResponse
// @Failure 500 {object} ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	sess, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create session",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, CreateSessionResponse{SessionID: sess.ID})
}

// GetSession godoc
// @Summary Get session state
// @Description Get the full ordering state of the current session
// @Tags sessions
// @Produce json
// @Success 200 {object} models.Session
// @Failure 401 {object} ErrorResponse
// @Router /session [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.sessionService.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Session not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// SelectVenue godoc
// @Summary Select a venue
// @Description Point the session at a venue; browsing and ordering require one
// @Tags sessions
// @Accept json
// @Produce json
// @Param venue body SelectVenueRequest true "Venue selection"
// @Success 200 {object} models.Session
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /session/venue [put]
func (h *SessionHandler) SelectVenue(c *gin.Context) {
	var req SelectVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	sess, err := h.sessionService.SelectVenue(c.Request.Context(), middleware.GetSessionID(c), req.VenueID)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrVenueNotFound):
			status = http.StatusNotFound
		case errors.Is(err, session.ErrNotFound):
			status = http.StatusUnauthorized
		}
		c.JSON(status, ErrorResponse{
			Error:   "Failed to select venue",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// ChangeVenue godoc
// @Summary Change venue
// @Description Clear the venue pointer so another venue can be picked; cart and form are kept
// @Tags sessions
// @Produce json
// @Success 200 {object} models.Session
// @Failure 401 {object} ErrorResponse
// @Router /session/venue [delete]
func (h *SessionHandler) ChangeVenue(c *gin.Context) {
	sess, err := h.sessionService.ChangeVenue(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to change venue",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, sess)
}

// Request/Response models
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
}

type SelectVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}
