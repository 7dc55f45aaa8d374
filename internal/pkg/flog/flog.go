// Package flog provides a set of context.Context helpers for zerolog.
package flog

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type idKey struct{}

// NewRunContext derives a context carrying a fresh run id and a copy of the
// global logger annotated with it under fieldKey.
func NewRunContext(ctx context.Context, fieldKey string) context.Context {
	id := xid.New()
	l := log.Logger.With().Str(fieldKey, id.String()).Logger()
	return CtxWithID(l.WithContext(ctx), id)
}

// FromCtx gets the logger in the context.
// This is a shortcut for log.Ctx(ctx)
func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}

// IDFromCtx returns the run id associated to the context if any.
func IDFromCtx(ctx context.Context) (id xid.ID, ok bool) {
	id, ok = ctx.Value(idKey{}).(xid.ID)
	return
}

// CtxWithID adds the given xid.ID to the context
func CtxWithID(ctx context.Context, id xid.ID) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// Logger Level Method Helpers
func DebugFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Debug()
}

func InfoFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Info()
}

func WarnFrom(ctx context.Context) *zerolog.Event {
	return FromCtx(ctx).Warn()
}
