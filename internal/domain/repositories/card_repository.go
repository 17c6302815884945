package repositories

import (
	"context"

	"board-service/internal/domain/entities"
)

type CardRepository interface {
	SiblingStore

	Create(ctx context.Context, card *entities.Card) error
	// FindById returns the card with Column and Column.Board loaded.
	FindById(ctx context.Context, id int64) (*entities.Card, error)
	ListForUser(ctx context.Context, userID int64, columnID *int64) ([]*entities.Card, error)
	ExistsByName(ctx context.Context, columnID int64, name string, excludeID int64) (bool, error)
	// Update writes name, description and link. Position and column are left
	// alone.
	Update(ctx context.Context, card *entities.Card) error
	// Place writes ColumnId and Position. The caller must hold the lock of
	// every column involved.
	Place(ctx context.Context, card *entities.Card) error
	// Save writes every field. It is used when a card changes column, under
	// both column locks.
	Save(ctx context.Context, card *entities.Card) error
	Delete(ctx context.Context, id int64) error
}
