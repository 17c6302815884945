package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-service/internal/domain"
	"board-service/internal/domain/ordering"
)

type fakeSiblings struct {
	locked []int64
	last   int
	count  int
	shifts []ordering.Shift
}

func (f *fakeSiblings) LockParent(_ context.Context, parentID int64) error {
	f.locked = append(f.locked, parentID)
	return nil
}

func (f *fakeSiblings) LastPosition(context.Context, int64) (int, error) { return f.last, nil }

func (f *fakeSiblings) Count(context.Context, int64) (int, error) { return f.count, nil }

func (f *fakeSiblings) ShiftPositions(_ context.Context, _, _ int64, shift ordering.Shift) error {
	f.shifts = append(f.shifts, shift)
	return nil
}

func TestPositionManagerLocksInIdOrder(t *testing.T) {
	store := &fakeSiblings{}
	m := NewPositionManager(store)

	require.NoError(t, m.LockParents(context.Background(), 9, 3, 9))
	assert.Equal(t, []int64{3, 9}, store.locked)
}

func TestPositionManagerAppend(t *testing.T) {
	store := &fakeSiblings{last: 4}
	pos, err := NewPositionManager(store).Append(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, pos)
	assert.Equal(t, []int64{1}, store.locked)
}

func TestPositionManagerRelocate(t *testing.T) {
	store := &fakeSiblings{count: 4}
	m := NewPositionManager(store)
	ctx := context.Background()

	moved, err := m.Relocate(ctx, 1, 10, 2, 2)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, store.shifts)

	moved, err = m.Relocate(ctx, 1, 10, 4, 1)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []ordering.Shift{{From: 1, To: 3, Delta: 1}}, store.shifts)

	_, err = m.Relocate(ctx, 1, 10, 1, 5)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPositionManagerRemove(t *testing.T) {
	store := &fakeSiblings{last: 5}
	require.NoError(t, NewPositionManager(store).Remove(context.Background(), 1, 10, 2))
	assert.Equal(t, []ordering.Shift{{From: 3, To: 5, Delta: -1}}, store.shifts)
}
