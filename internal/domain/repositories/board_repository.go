package repositories

import (
	"context"

	"board-service/internal/domain/entities"
)

type BoardRepository interface {
	Create(ctx context.Context, board *entities.Board) error
	FindById(ctx context.Context, id int64) (*entities.Board, error)
	ListByUser(ctx context.Context, userID int64) ([]*entities.Board, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, board *entities.Board) error
	// Delete removes the board with its columns and cards.
	Delete(ctx context.Context, id int64) error
}
