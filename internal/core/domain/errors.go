package domain

import "errors"

// Catalog and account errors. Handlers map these onto HTTP statuses; the
// error handler is the fallback for anything that escapes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmptyCredentials   = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginThrottled     = errors.New("too many failed login attempts")

	ErrStoreNotFound = errors.New("store not found")
	ErrStoreExists   = errors.New("store already exists")
	ErrItemNotFound  = errors.New("item not found")
	ErrItemExists    = errors.New("item already exists")
)

// Token errors returned by the identity resolver. The auth middleware
// absorbs all of them into a 401; the distinction exists for logs and
// metrics, never for the response body.
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrTokenMalformed    = errors.New("malformed token")
	ErrBadSignature      = errors.New("invalid token signature")
	ErrTokenExpired      = errors.New("token expired")
	ErrUnknownSubject    = errors.New("unknown token subject")
)
