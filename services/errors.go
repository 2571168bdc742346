package services

import "errors"

var (
	// ErrNotFound covers a missing business, menu, section, item or order.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner is an ownership-chain check failure.
	ErrNotOwner = errors.New("not owner")
	// ErrNotAdmin means the caller is not on the admin allowlist.
	ErrNotAdmin = errors.New("not admin")
)
