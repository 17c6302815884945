package services

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
	"board-service/internal/application/mapper"
	"board-service/internal/application/query"
	"board-service/internal/domain"
	"board-service/internal/domain/access"
	"board-service/internal/domain/entities"
	"board-service/internal/domain/quota"
	"board-service/internal/domain/repositories"
)

type ColumnService struct {
	tx         repositories.Transactor
	userRepo   repositories.UserRepository
	boardRepo  repositories.BoardRepository
	columnRepo repositories.ColumnRepository
	positions  *PositionManager
	policy     quota.Policy
	notifier   notifier
	logger     *log.Logger
}

func NewColumnService(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	boardRepo repositories.BoardRepository,
	columnRepo repositories.ColumnRepository,
	policy quota.Policy,
	publisher interfaces.EventPublisher,
	logger *log.Logger,
) interfaces.ColumnService {
	return &ColumnService{
		tx:         tx,
		userRepo:   userRepo,
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		positions:  NewPositionManager(columnRepo),
		policy:     policy,
		notifier:   notifier{publisher: publisher, logger: logger},
		logger:     logger,
	}
}

func (s *ColumnService) ListColumns(ctx context.Context, user *entities.User, boardID *int64) (*query.ColumnQueryListResult, error) {
	columns, err := s.columnRepo.ListForUser(ctx, user.Id, boardID)
	if err != nil {
		return nil, err
	}
	return &query.ColumnQueryListResult{Result: mapper.NewColumnResultsFromEntities(columns)}, nil
}

func (s *ColumnService) CreateColumn(ctx context.Context, user *entities.User, createCommand *command.CreateColumnCommand) (*command.ColumnCommandResult, error) {
	color, err := parseColor(createCommand.Color)
	if err != nil {
		return nil, err
	}

	var column *entities.Column
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		board, err := s.boardRepo.FindById(ctx, createCommand.Board)
		if board, err = access.Authorize(user, board, err); err != nil {
			return err
		}
		if err := s.checkColor(ctx, user, color); err != nil {
			return err
		}

		column, err = entities.NewColumn(createCommand.Name, color, board)
		if err != nil {
			return err
		}
		position, err := s.positions.Append(ctx, board.Id)
		if err != nil {
			return err
		}
		if err := s.checkNameFree(ctx, board.Id, column.Name, 0); err != nil {
			return err
		}
		column.Position = position
		return s.columnRepo.Create(ctx, column)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewColumnResultFromEntity(column)
	s.logger.Debug("column created", "column", column.Id, "board", column.BoardId, "position", column.Position)
	s.notifier.publish(ctx, EventColumnCreated, result)
	return &command.ColumnCommandResult{Result: result}, nil
}

func (s *ColumnService) GetColumn(ctx context.Context, user *entities.User, id int64) (*query.ColumnQueryResult, error) {
	column, err := s.authorizedColumn(ctx, user, id)
	if err != nil {
		return nil, err
	}
	return &query.ColumnQueryResult{Result: mapper.NewColumnResultFromEntity(column)}, nil
}

func (s *ColumnService) UpdateColumn(ctx context.Context, user *entities.User, updateCommand *command.UpdateColumnCommand) (*command.ColumnCommandResult, error) {
	var column *entities.Column
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		column, err = s.authorizedColumn(ctx, user, updateCommand.Id)
		if err != nil {
			return err
		}

		if updateCommand.Name != nil {
			if err := column.Rename(*updateCommand.Name); err != nil {
				return err
			}
			if err := s.checkNameFree(ctx, column.BoardId, column.Name, column.Id); err != nil {
				return err
			}
		}
		if updateCommand.Color != nil {
			color, err := parseColor(*updateCommand.Color)
			if err != nil {
				return err
			}
			if err := s.checkColor(ctx, user, color); err != nil {
				return err
			}
			if err := column.Paint(color); err != nil {
				return err
			}
		}
		if err := s.columnRepo.Update(ctx, column); err != nil {
			return err
		}
		column, err = s.columnRepo.FindById(ctx, column.Id)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewColumnResultFromEntity(column)
	s.notifier.publish(ctx, EventColumnUpdated, result)
	return &command.ColumnCommandResult{Result: result}, nil
}

func (s *ColumnService) DeleteColumn(ctx context.Context, user *entities.User, id int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		column, err := s.lockedColumn(ctx, user, id)
		if err != nil {
			return err
		}
		if err := s.positions.Remove(ctx, column.BoardId, column.Id, column.Position); err != nil {
			return err
		}
		return s.columnRepo.Delete(ctx, column.Id)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("column deleted", "column", id, "user", user.Id)
	s.notifier.publish(ctx, EventColumnDeleted, DeletedEvent{Id: id, User: user.Id})
	return nil
}

// MoveColumn puts the column at the requested position within its board.
func (s *ColumnService) MoveColumn(ctx context.Context, user *entities.User, moveCommand *command.MoveCommand) (*command.ColumnCommandResult, error) {
	if moveCommand.Position == nil {
		return nil, domain.Validationf("new position is required")
	}
	target := *moveCommand.Position

	var (
		column *entities.Column
		moved  bool
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		column, err = s.lockedColumn(ctx, user, moveCommand.Id)
		if err != nil {
			return err
		}
		moved, err = s.positions.Relocate(ctx, column.BoardId, column.Id, column.Position, target)
		if err != nil || !moved {
			return err
		}
		column.Position = target
		column.UpdatedAt = time.Now()
		return s.columnRepo.Place(ctx, column)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewColumnResultFromEntity(column)
	if moved {
		s.logger.Debug("column moved", "column", column.Id, "board", column.BoardId, "position", target)
		s.notifier.publish(ctx, EventColumnMoved, result)
	}
	return &command.ColumnCommandResult{Result: result}, nil
}

func (s *ColumnService) authorizedColumn(ctx context.Context, user *entities.User, id int64) (*entities.Column, error) {
	column, err := s.columnRepo.FindById(ctx, id)
	return access.Authorize(user, column, err)
}

// lockedColumn authorizes the column, locks its board and reads the column
// again so that its position is current.
func (s *ColumnService) lockedColumn(ctx context.Context, user *entities.User, id int64) (*entities.Column, error) {
	column, err := s.authorizedColumn(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if err := s.columnRepo.LockParent(ctx, column.BoardId); err != nil {
		return nil, err
	}
	return s.authorizedColumn(ctx, user, id)
}

// checkColor reads the owner's current tier before allowing color.
func (s *ColumnService) checkColor(ctx context.Context, user *entities.User, color entities.Color) error {
	owner, err := s.userRepo.FindById(ctx, user.Id)
	if err != nil {
		return err
	}
	return s.policy.CheckColumnColor(owner, color)
}

func (s *ColumnService) checkNameFree(ctx context.Context, boardID int64, name string, excludeID int64) error {
	taken, err := s.columnRepo.ExistsByName(ctx, boardID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Validationf("column with this name already exists")
	}
	return nil
}

func parseColor(raw string) (entities.Color, error) {
	if raw == "" {
		return entities.ColorDefault, nil
	}
	color, ok := entities.ParseColor(raw)
	if !ok {
		return "", domain.Validationf("%q is not a valid color", raw)
	}
	return color, nil
}
