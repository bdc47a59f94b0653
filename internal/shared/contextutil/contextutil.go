package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type contextKey int

const (
	metadataKey contextKey = iota
	loggerKey
)

// Metadata is the caller identity carried through a request. It is stored
// by value, so every With* call derives a new copy and never mutates the
// parent context's view.
type Metadata struct {
	RequestID string
	UserID    string
	CompanyID string
}

// LogFields returns zap fields for the non-empty identifiers.
func (m Metadata) LogFields() []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if m.RequestID != "" {
		fields = append(fields, zap.String("request_id", m.RequestID))
	}
	if m.UserID != "" {
		fields = append(fields, zap.String("user_id", m.UserID))
	}
	if m.CompanyID != "" {
		fields = append(fields, zap.String("company_id", m.CompanyID))
	}
	return fields
}

func ExtractMetadata(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	md, _ := ctx.Value(metadataKey).(Metadata)
	return md
}

func WithMetadata(ctx context.Context, md Metadata) context.Context {
	return context.WithValue(ctx, metadataKey, md)
}

func update(ctx context.Context, fn func(*Metadata)) context.Context {
	md := ExtractMetadata(ctx)
	fn(&md)
	return WithMetadata(ctx, md)
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return update(ctx, func(md *Metadata) { md.RequestID = rid })
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return update(ctx, func(md *Metadata) { md.UserID = uid })
}

func WithCompanyID(ctx context.Context, cid string) context.Context {
	return update(ctx, func(md *Metadata) { md.CompanyID = cid })
}

func GetRequestID(ctx context.Context) string { return ExtractMetadata(ctx).RequestID }

func GetUserID(ctx context.Context) string { return ExtractMetadata(ctx).UserID }

func GetCompanyID(ctx context.Context) string { return ExtractMetadata(ctx).CompanyID }

// WithLogger stores a request-scoped (already decorated) logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request logger, then defaultLogger, then a nop logger. Never nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}
