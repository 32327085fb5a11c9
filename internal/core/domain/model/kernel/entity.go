package kernel

import (
	"time"

	"transport/internal/pkg/errs"
)

// ErrCreatedAtIsRequired is returned when restoring an entity without a
// creation timestamp.
var ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")

// Entity is the identity and audit base embedded by every aggregate.
// It carries a unique identifier, the UTC creation timestamp and the
// timestamp of the last modification (nil until the first change).
//
// Entities are compared by identifier only. The embedding aggregate exposes
// the accessors through promotion.
type Entity struct {
	id        UUID
	createdAt time.Time
	updatedAt *time.Time
}

// NewEntity creates a fresh Entity with a random identifier and the current
// UTC time as creation timestamp.
func NewEntity() Entity {
	return Entity{
		id:        NewUUID(),
		createdAt: time.Now().UTC(),
	}
}

// RestoreEntity reconstructs an Entity from persistent storage, preserving
// its identifier and audit timestamps.
func RestoreEntity(id UUID, createdAt time.Time, updatedAt *time.Time) (Entity, error) {
	if err := id.Validate(); err != nil {
		return Entity{}, err
	}
	if createdAt.IsZero() {
		return Entity{}, ErrCreatedAtIsRequired
	}

	return Entity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the unique identifier of the entity.
func (e *Entity) ID() UUID {
	return e.id
}

// CreatedAt returns the UTC timestamp at which the entity was created.
func (e *Entity) CreatedAt() time.Time {
	return e.createdAt
}

// UpdatedAt returns the UTC timestamp of the last modification, or nil if
// the entity has never been modified since creation.
func (e *Entity) UpdatedAt() *time.Time {
	return e.updatedAt
}

// MarkUpdated stamps the entity with the current UTC time as its last
// modification timestamp. Every mutating aggregate operation calls this
// after a successful state change.
func (e *Entity) MarkUpdated() {
	now := time.Now().UTC()
	e.updatedAt = &now
}
