package server

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/sprout-ui/sprout/pkg/host/livedoc"
)

// traced wraps one event dispatch in a span.
func (s *Server) traced(ctx context.Context, sess *Session, ev livedoc.ClientEvent, fn func() error) error {
	_, span := s.tracer.Start(ctx, "sprout.dispatch")
	defer span.End()

	span.SetAttributes(
		attribute.String("sprout.event_type", ev.Type),
		attribute.String("sprout.target_sid", ev.SID),
		attribute.String("sprout.session_id", sess.id),
	)

	err := fn()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
