package kernel

import (
	"time"

	"transport/internal/pkg/errs"
)

// ErrDeletionStateIsInconsistent is returned when restoring a soft-deletable
// entity whose deletion flag and deletion timestamp disagree.
var ErrDeletionStateIsInconsistent = errs.NewValueIsRequiredError(
	"deletedAt must be set exactly when the entity is marked deleted")

// SoftDeletableEntity extends Entity with a reversible soft-delete
// lifecycle. A deleted entity stays in storage and keeps its deletion
// timestamp; Restore brings it back into the visible set.
//
// The invariant isDeleted == (deletedAt != nil) holds at all times.
type SoftDeletableEntity struct {
	Entity
	isDeleted bool
	deletedAt *time.Time
}

// NewSoftDeletableEntity creates a fresh, non-deleted entity base.
func NewSoftDeletableEntity() SoftDeletableEntity {
	return SoftDeletableEntity{
		Entity: NewEntity(),
	}
}

// RestoreSoftDeletableEntity reconstructs the soft-delete state from
// persistent storage. The deletion flag must agree with the deletion
// timestamp.
func RestoreSoftDeletableEntity(
	id UUID,
	createdAt time.Time,
	updatedAt *time.Time,
	isDeleted bool,
	deletedAt *time.Time,
) (SoftDeletableEntity, error) {
	entity, err := RestoreEntity(id, createdAt, updatedAt)
	if err != nil {
		return SoftDeletableEntity{}, err
	}
	if isDeleted != (deletedAt != nil) {
		return SoftDeletableEntity{}, ErrDeletionStateIsInconsistent
	}

	return SoftDeletableEntity{
		Entity:    entity,
		isDeleted: isDeleted,
		deletedAt: deletedAt,
	}, nil
}

// IsDeleted reports whether the entity is currently soft-deleted.
func (e *SoftDeletableEntity) IsDeleted() bool {
	return e.isDeleted
}

// DeletedAt returns the UTC timestamp at which the entity was soft-deleted,
// or nil if the entity is not deleted.
func (e *SoftDeletableEntity) DeletedAt() *time.Time {
	return e.deletedAt
}

// Delete marks the entity as soft-deleted and stamps the modification
// timestamp. Deleting an already deleted entity is a no-op and leaves both
// timestamps untouched.
func (e *SoftDeletableEntity) Delete() {
	if e.isDeleted {
		return
	}

	now := time.Now().UTC()
	e.isDeleted = true
	e.deletedAt = &now
	e.MarkUpdated()
}

// Restore brings a soft-deleted entity back into the visible set and stamps
// the modification timestamp. Restoring a non-deleted entity is a no-op.
func (e *SoftDeletableEntity) Restore() {
	if !e.isDeleted {
		return
	}

	e.isDeleted = false
	e.deletedAt = nil
	e.MarkUpdated()
}
