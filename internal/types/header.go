package types

const (
	HeaderTenantID      = "X-Tenant-ID"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserID        = "X-User-ID"
	HeaderAuthorization = "Authorization"
)
