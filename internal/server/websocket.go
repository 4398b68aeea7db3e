package server

import (
	"bytes"
	"strings"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-engine-go/internal/uci"
)

// handleUCI runs one UCI session per connection. Each text message is a
// command line; every reply line goes back as its own message.
func (s *Server) handleUCI(c *websocket.Conn) {
	rid, _ := c.Locals(ridKey).(string)
	log := s.log.With().Str("rid", rid).Logger()
	c.SetReadLimit(int64(s.cfg.Server.MessageLimit))
	session := uci.NewSession(s.cfg, log)
	log.Info().Msg("uci connection opened")
	defer log.Info().Msg("uci connection closed")

	var out bytes.Buffer
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("read error")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		out.Reset()
		quit := false
		for _, line := range strings.Split(string(message), "\n") {
			if quit = session.Execute(line, &out); quit {
				break
			}
		}

		for _, reply := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
			if reply == "" {
				continue
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
				log.Warn().Err(err).Msg("write error")
				return
			}
		}

		if quit {
			_ = c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "quit"))
			return
		}
	}
}
