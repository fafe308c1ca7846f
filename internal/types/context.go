package types

import "context"

// ContextKey is the type used for all context keys in the application.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxTenantID  ContextKey = "ctx_tenant_id"
	CtxUserID    ContextKey = "ctx_user_id"
)

// DefaultTenantID is used for requests arriving without an explicit tenant,
// e.g. scripts and tests.
const DefaultTenantID = "tenant_default"

func GetRequestID(ctx context.Context) string {
	return getString(ctx, CtxRequestID)
}

func GetTenantID(ctx context.Context) string {
	if id := getString(ctx, CtxTenantID); id != "" {
		return id
	}
	return DefaultTenantID
}

func GetUserID(ctx context.Context) string {
	return getString(ctx, CtxUserID)
}

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxRequestID, id)
}

func SetTenantID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxTenantID, id)
}

func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxUserID, id)
}

func getString(ctx context.Context, key ContextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
