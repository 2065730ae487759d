package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"go.uber.org/zap"
)

// wsRequest is one text frame of the websocket API. id is echoed back.
type wsRequest struct {
	ID         string `json:"id"`
	Dimensions int    `json:"dimensions" validate:"omitempty,oneof=2 3"`
	routeRequest3D
}

type session struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

// readRequest returns nil, nil for control frames.
func (s *session) readRequest() (*wsRequest, error) {
	rd := wsutil.NewServerSideReader(s.conn)
	h, err := rd.NextFrame()
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(s.conn, ws.StateServerSide)(h, rd)
	}

	req := &wsRequest{}
	decoder := json.NewDecoder(rd)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(req)
	// the next frame header follows whatever the decoder left unread
	if derr := rd.Discard(); derr != nil {
		return nil, derr
	}
	if err != nil {
		return req, &frameError{err: err}
	}
	return req, nil
}

// frameError is a malformed frame. the session answers it and keeps reading.
type frameError struct {
	err error
}

func (e *frameError) Error() string {
	return e.err.Error()
}

func (s *session) write(x any) error {
	s.io.Lock()
	defer s.io.Unlock()

	w := wsutil.NewWriter(s.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)
	if err := encoder.Encode(x); err != nil {
		return err
	}
	return w.Flush()
}

func (s *session) writeError(id string, status int, message string) error {
	return s.write(envelope{"id": id, "error": newErrorBody(status, message)})
}

// serve answers requests until the peer closes the connection or ctx is done.
func (s *session) serve(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		req, err := s.readRequest()
		var ferr *frameError
		switch {
		case errors.As(err, &ferr):
			if werr := s.writeError(req.ID, http.StatusBadRequest, ferr.Error()); werr != nil {
				return werr
			}
			continue
		case err != nil:
			var closed wsutil.ClosedError
			if errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		case req == nil:
			continue
		}

		if err := s.answer(ctx, req); err != nil {
			return err
		}
	}
}

func (s *session) answer(ctx context.Context, req *wsRequest) error {
	api := s.hub.api
	if err := api.validationError(req); err != nil {
		return s.writeError(req.ID, http.StatusBadRequest, err.Error())
	}

	if req.Dimensions == 3 {
		ans, err := api.routingService.ShortestPath3D(ctx, req.toQuery())
		if err != nil {
			status := errorStatus(err)
			return s.writeError(req.ID, status, publicMessage(status, err))
		}
		return s.write(envelope{"id": req.ID, "data": NewRouteResponse(ans)})
	}

	ans, err := api.routingService.ShortestPath2D(ctx, req.to2D().toQuery())
	if err != nil {
		status := errorStatus(err)
		return s.writeError(req.ID, status, publicMessage(status, err))
	}
	return s.write(envelope{"id": req.ID, "data": NewRouteResponse(ans)})
}

// to2D drops the z axis of a 2D frame.
func (req *wsRequest) to2D() routeRequest2D {
	out := routeRequest2D{searchFields: req.searchFields}
	if req.Start != nil {
		start := req.Start.XY()
		out.Start = &start
	}
	if req.Goal != nil {
		goal := req.Goal.XY()
		out.Goal = &goal
	}
	for _, c := range req.Occupied {
		out.Occupied = append(out.Occupied, c.XY())
	}
	for _, w := range req.Weights {
		out.Weights = append(out.Weights, weightedCell2D{X: w.X, Y: w.Y, Weight: w.Weight})
	}
	return out
}

// Hub tracks the open websocket sessions.
type Hub struct {
	mu  sync.RWMutex
	seq uint
	us  []*session
	ns  map[uint]*session

	api *routingAPI
	log *zap.Logger
}

func NewHub(routingService RoutingService, log *zap.Logger) *Hub {
	return &Hub{
		ns:  make(map[uint]*session),
		us:  make([]*session, 0),
		api: New(routingService, log),
		log: log,
	}
}

// Serve registers conn and answers its frames until it closes. conn is closed on return.
func (h *Hub) Serve(ctx context.Context, conn net.Conn) error {
	s := h.register(conn)
	defer h.remove(s)
	return s.serve(ctx)
}

func (h *Hub) register(conn io.ReadWriteCloser) *session {
	s := &session{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	s.id = h.seq
	h.ns[s.id] = s
	h.us = append(h.us, s)
	h.seq++
	h.mu.Unlock()

	return s
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[s.id]; !ok {
		return
	}
	delete(h.ns, s.id)
	_ = s.conn.Close()

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= s.id
	})
	h.us = append(h.us[:i], h.us[i+1:]...)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// CloseAll closes every open session.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	sessions := make([]*session, len(h.us))
	copy(sessions, h.us)
	h.mu.RUnlock()

	for _, s := range sessions {
		h.remove(s)
	}
}
