package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sprout-ui/sprout/pkg/dom"
	"github.com/sprout-ui/sprout/pkg/host/livedoc"
)

// Session is one connected browser: a WebSocket connection, a livedoc host
// document over it, and a root node mounted into the page container.
type Session struct {
	id     string
	server *Server
	conn   *websocket.Conn
	doc    *livedoc.Document
	root   *dom.Node
	logger *slog.Logger
}

func newSession(s *Server, conn *websocket.Conn) *Session {
	sess := &Session{
		id:     uuid.NewString(),
		server: s,
		conn:   conn,
	}
	sess.logger = s.logger.With("component", "session", "session_id", sess.id)
	sess.doc = livedoc.New(conn)
	sess.doc.OnOp = func(op livedoc.Op) {
		s.metrics.opsTotal.WithLabelValues(op.Op).Inc()
	}
	return sess
}

// ID returns the session identifier.
func (sess *Session) ID() string { return sess.id }

// run mounts a fresh root and processes events until the connection drops.
// Events are handled strictly one at a time; a listener's Update completes
// (including its outbound ops) before the next event is read.
func (sess *Session) run(ctx context.Context) {
	defer sess.close()

	sess.root = sess.server.cfg.Root()
	if err := sess.root.Mount(sess.doc, "#"+sess.server.cfg.ContainerID); err != nil {
		sess.logger.Error("mount failed", "err", err)
		return
	}
	sess.logger.Info("session started", "root_sid", sess.root.ID())

	for {
		var ev livedoc.ClientEvent
		if err := sess.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.server.metrics.wsErrors.WithLabelValues("read").Inc()
				sess.logger.Error("read failed", "err", err)
			}
			return
		}
		sess.dispatch(ctx, ev)
	}
}

func (sess *Session) dispatch(ctx context.Context, ev livedoc.ClientEvent) {
	start := time.Now()
	err := sess.server.traced(ctx, sess, ev, func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("listener panic: %v", r)
			}
		}()
		return sess.doc.Dispatch(ev)
	})
	sess.server.metrics.observeEvent(ev.Type, time.Since(start), err)
	if err != nil {
		sess.logger.Error("dispatch failed", "event", ev.Type, "sid", ev.SID, "err", err)
	}
}

func (sess *Session) close() {
	sess.doc.Close()
	sess.conn.Close()
}
