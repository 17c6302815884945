package services

import (
	"context"
	"slices"

	"board-service/internal/domain/ordering"
	"board-service/internal/domain/repositories"
)

// PositionManager keeps the positions of one kind of child dense. Every
// method expects to run inside a transaction.
type PositionManager struct {
	store repositories.SiblingStore
}

func NewPositionManager(store repositories.SiblingStore) *PositionManager {
	return &PositionManager{store: store}
}

// Append locks parentID and returns the position after its last child.
func (m *PositionManager) Append(ctx context.Context, parentID int64) (int, error) {
	if err := m.store.LockParent(ctx, parentID); err != nil {
		return 0, err
	}
	last, err := m.store.LastPosition(ctx, parentID)
	if err != nil {
		return 0, err
	}
	return ordering.Next(last), nil
}

// Relocate shifts the siblings between current and target so that the child
// id can take target. The caller must have locked parentID and must store the
// child's new position afterwards. It reports whether anything changed.
func (m *PositionManager) Relocate(ctx context.Context, parentID, id int64, current, target int) (bool, error) {
	count, err := m.store.Count(ctx, parentID)
	if err != nil {
		return false, err
	}
	shift, err := ordering.Relocate(current, target, count)
	if err != nil {
		return false, err
	}
	if current == target {
		return false, nil
	}
	return true, m.store.ShiftPositions(ctx, parentID, id, shift)
}

// Remove closes the gap left by the child id at position removed. The caller
// must have locked parentID.
func (m *PositionManager) Remove(ctx context.Context, parentID, id int64, removed int) error {
	last, err := m.store.LastPosition(ctx, parentID)
	if err != nil {
		return err
	}
	return m.store.ShiftPositions(ctx, parentID, id, ordering.Compact(removed, last))
}

// LockParents locks every parent in ascending id order so that two transfers
// in opposite directions cannot deadlock.
func (m *PositionManager) LockParents(ctx context.Context, parentIDs ...int64) error {
	sorted := slices.Clone(parentIDs)
	slices.Sort(sorted)
	for _, id := range slices.Compact(sorted) {
		if err := m.store.LockParent(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
