package repositories

import (
	"context"

	"board-service/internal/domain/entities"
)

type ColumnRepository interface {
	SiblingStore

	Create(ctx context.Context, column *entities.Column) error
	// FindById returns the column with its Board loaded.
	FindById(ctx context.Context, id int64) (*entities.Column, error)
	// ListForUser returns the columns on boards owned by userID, optionally
	// limited to one board, ordered by board and position.
	ListForUser(ctx context.Context, userID int64, boardID *int64) ([]*entities.Column, error)
	ExistsByName(ctx context.Context, boardID int64, name string, excludeID int64) (bool, error)
	// Update writes the name and color. Position and board are left alone.
	Update(ctx context.Context, column *entities.Column) error
	// Place writes Position. The caller must hold the board lock.
	Place(ctx context.Context, column *entities.Column) error
	// Delete removes the column with its cards.
	Delete(ctx context.Context, id int64) error
}
