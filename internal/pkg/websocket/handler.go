package websocket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/networknexus/nexushub/internal/app/models/dto"
	"github.com/rs/zerolog"
)

// Handler upgrades occupancy feed requests
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Browsers are only accepted from allowedOrigins;
// "*" allows any origin, and requests without an Origin header are always accepted.
func NewHandler(hub *Hub, allowedOrigins []string, logger zerolog.Logger) *Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origins["*"] || origins[origin]
			},
		},
		logger: logger,
	}
}

// HandleConnection godoc
// @Summary Subscribe to mentorship occupancy updates
// @Description Upgrades to a WebSocket that receives an occupancy event each time a mentorship gains a participant. Without mentorshipId every mentorship is followed.
// @Tags mentorships
// @Param mentorshipId query int false "Only follow this mentorship"
// @Success 101 {object} websocket.OccupancyEvent "Switching Protocols"
// @Failure 400 {object} dto.ErrorResponse "Invalid mentorship ID"
// @Router /mentorships/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	mentorshipID := AllMentorships
	if raw := c.Query("mentorshipId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid mentorship ID").WithField("mentorshipId")))
			return
		}
		mentorshipID = id
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("mentorshipID", mentorshipID).
			Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:          h.hub,
		conn:         conn,
		send:         make(chan []byte, 16),
		mentorshipID: mentorshipID,
		remoteAddr:   conn.RemoteAddr().String(),
		logger:       h.logger,
	}
	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
