package auth

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
)

const (
	SessionIDHeader = "x-session-id"
	LanguageHeader  = "accept-language"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	languageKey  contextKey = "language"
)

// ShopperContext is what an interceptor learns about the caller.
type ShopperContext struct {
	SessionID string
	Language  string
}

func WithShopper(ctx context.Context, sc ShopperContext) context.Context {
	if sc.SessionID != "" {
		ctx = context.WithValue(ctx, sessionIDKey, sc.SessionID)
	}
	if sc.Language != "" {
		ctx = context.WithValue(ctx, languageKey, sc.Language)
	}
	return ctx
}

// GetSessionID reads the session set by an interceptor, falling back to
// the incoming metadata.
func GetSessionID(ctx context.Context) string {
	if val, ok := ctx.Value(sessionIDKey).(string); ok {
		return val
	}
	return fromMetadata(ctx, SessionIDHeader)
}

// GetLanguage returns the caller's Accept-Language value, if any.
func GetLanguage(ctx context.Context) string {
	if val, ok := ctx.Value(languageKey).(string); ok {
		return val
	}
	return fromMetadata(ctx, LanguageHeader)
}

func fromMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if val := md.Get(key); len(val) > 0 {
		return strings.TrimSpace(val[0])
	}
	return ""
}
