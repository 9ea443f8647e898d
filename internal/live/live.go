// Package live pushes fresh seal coefficients over a websocket as the client
// edits the input form. Every message is recomputed from scratch; the
// previous result is simply discarded.
package live

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

type Handler struct {
	Upgrader websocket.Upgrader
}

type Reply struct {
	Type   string       `json:"type"` // "result" or "error"
	Result *seal.Result `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
	Field  string       `json:"field,omitempty"`
}

// Recompute evaluates one edited input set. Validation failures come back as
// error replies so the form can mark the field without dropping the socket.
func Recompute(in seal.Input) Reply {
	res, err := seal.Calculate(in)
	if err != nil {
		r := Reply{Type: "error", Error: err.Error()}
		var inv *seal.InvalidInputError
		if errors.As(err, &inv) {
			r.Field = inv.Field
		}
		return r
	}
	return Reply{Type: "result", Result: &res}
}

func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var in seal.Input
		if err := conn.ReadJSON(&in); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("websocket read")
			}
			return
		}
		if err := conn.WriteJSON(Recompute(in)); err != nil {
			log.WithError(err).Debug("websocket write")
			return
		}
	}
}
