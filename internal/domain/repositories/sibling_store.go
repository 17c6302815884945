package repositories

import (
	"context"

	"board-service/internal/domain/ordering"
)

// SiblingStore gives access to the positions of one kind of ordered child
// (columns of a board, cards of a column). All methods must run inside a
// transaction that called LockParent for the same parent first.
type SiblingStore interface {
	// LockParent takes a write lock on the parent row, serializing every
	// position change among its children.
	LockParent(ctx context.Context, parentID int64) error
	LastPosition(ctx context.Context, parentID int64) (int, error)
	Count(ctx context.Context, parentID int64) (int, error)
	ShiftPositions(ctx context.Context, parentID, excludeID int64, shift ordering.Shift) error
}
