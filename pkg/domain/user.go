package domain

import "github.com/google/uuid"

// UserID identifies the owner of an analysis. It is taken from the subject of
// the bearer token presented to the HTTP API.
type UserID uuid.UUID

// String returns the canonical uuid representation.
func (u UserID) String() string { return uuid.UUID(u).String() }
