package domain

import "errors"

// Login flow. Unknown email, missing password hash and password
// mismatch all collapse into ErrInvalidCredentials so callers cannot
// enumerate accounts. The admin-only rejection is intentionally
// distinguishable: at that point the caller already proved valid
// credentials.
var (
	ErrRateLimited        = errors.New("too many login attempts")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminOnly          = errors.New("admin access only")
	ErrUnauthenticated    = errors.New("not authenticated")
)

// Resource lookups.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrContactNotFound  = errors.New("contact not found")
	ErrBrokerNotFound   = errors.New("broker not found")
)

// Request-level rejections.
var (
	ErrSelfDelete           = errors.New("cannot delete yourself")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidContactStatus = errors.New("invalid contact status")
	ErrInvalidCronSecret    = errors.New("invalid cron secret")
)
