package constants

import "time"

// Context keys set by the admin auth middleware.
const (
	ContextKeyAdminID       = "admin_id"
	ContextKeyAdminUsername = "admin_username"
)

// Access key format: 16 uppercase alphanumerics in 4 dash-separated blocks.
const (
	AccessKeyLength    = 16
	AccessKeyBlockSize = 4
)

// DefaultAccessKeyExpiryDays is used when the issuer does not supply a window.
const DefaultAccessKeyExpiryDays = 7

// AdminTokenTTL bounds the lifetime of an admin bearer token.
const AdminTokenTTL = 24 * time.Hour
