package store

import "errors"

// Sentinel errors for the §7 error kinds the store surfaces. A duplicate
// squeak, received offer or received payment is reported via a (nil, nil)
// idempotent-skip return rather than as an error, per spec §4.2;
// InsertSentOffer, InsertPeer and InsertProfile return ErrAlreadyExists
// on a duplicate.
var (
	ErrAlreadyExists = errors.New("store: already exists")
	ErrNotFound      = errors.New("store: not found")
	ErrExpired       = errors.New("store: expired")
)
