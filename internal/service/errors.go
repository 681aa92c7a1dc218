package service

import "errors"

var (
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrMissingIdentityClaims   = errors.New("token carries no external id or tenant id")

	ErrPrincipalNotFound = errors.New("principal was not found in the user directory")
	ErrDirectoryLookup   = errors.New("user directory lookup failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidID             = errors.New("identifier must be a positive integer")
)
