package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// websocket upgrades GET /ws and answers route frames on the connection until it closes.
func (api *API) websocket(ctx context.Context) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			api.log.Debug("websocket upgrade failed", zap.Error(err))
			return
		}
		// the server read and write timeouts are set on the hijacked conn.
		_ = conn.SetDeadline(time.Time{})

		api.log.Debug("websocket session opened", zap.String("remote_addr", r.RemoteAddr))
		if err := api.hub.Serve(ctx, conn); err != nil {
			api.log.Debug("websocket session closed", zap.Error(err))
		}
	}
}
