package services

import (
	"context"

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

type BoardService struct {
	tx        repositories.Transactor
	userRepo  repositories.UserRepository
	boardRepo repositories.BoardRepository
	policy    quota.Policy
	notifier  notifier
	logger    *log.Logger
}

func NewBoardService(
	tx repositories.Transactor,
	userRepo repositories.UserRepository,
	boardRepo repositories.BoardRepository,
	policy quota.Policy,
	publisher interfaces.EventPublisher,
	logger *log.Logger,
) interfaces.BoardService {
	return &BoardService{
		tx:        tx,
		userRepo:  userRepo,
		boardRepo: boardRepo,
		policy:    policy,
		notifier:  notifier{publisher: publisher, logger: logger},
		logger:    logger,
	}
}

func (s *BoardService) ListBoards(ctx context.Context, user *entities.User) (*query.BoardQueryListResult, error) {
	boards, err := s.boardRepo.ListByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	return &query.BoardQueryListResult{Result: mapper.NewBoardResultsFromEntities(boards)}, nil
}

func (s *BoardService) CreateBoard(ctx context.Context, user *entities.User, createCommand *command.CreateBoardCommand) (*command.BoardCommandResult, error) {
	board, err := entities.NewBoard(createCommand.Name, user.Id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		// The owner row lock serializes concurrent creations against the
		// board count.
		owner, err := s.userRepo.LockById(ctx, user.Id)
		if err != nil {
			return err
		}
		owned, err := s.boardRepo.CountByUser(ctx, owner.Id)
		if err != nil {
			return err
		}
		if err := s.policy.CheckCreateBoard(owner, owned); err != nil {
			return err
		}
		if err := s.checkNameFree(ctx, owner.Id, board.Name, 0); err != nil {
			return err
		}
		return s.boardRepo.Create(ctx, board)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewBoardResultFromEntity(board)
	s.logger.Debug("board created", "board", board.Id, "user", user.Id)
	s.notifier.publish(ctx, EventBoardCreated, result)
	return &command.BoardCommandResult{Result: result}, nil
}

func (s *BoardService) GetBoard(ctx context.Context, user *entities.User, id int64) (*query.BoardQueryResult, error) {
	board, err := s.authorizedBoard(ctx, user, id)
	if err != nil {
		return nil, err
	}
	return &query.BoardQueryResult{Result: mapper.NewBoardResultFromEntity(board)}, nil
}

func (s *BoardService) UpdateBoard(ctx context.Context, user *entities.User, updateCommand *command.UpdateBoardCommand) (*command.BoardCommandResult, error) {
	var board *entities.Board
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		board, err = s.authorizedBoard(ctx, user, updateCommand.Id)
		if err != nil {
			return err
		}
		if err := board.Rename(updateCommand.Name); err != nil {
			return err
		}
		if err := s.checkNameFree(ctx, user.Id, board.Name, board.Id); err != nil {
			return err
		}
		return s.boardRepo.Update(ctx, board)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewBoardResultFromEntity(board)
	s.notifier.publish(ctx, EventBoardUpdated, result)
	return &command.BoardCommandResult{Result: result}, nil
}

func (s *BoardService) DeleteBoard(ctx context.Context, user *entities.User, id int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.authorizedBoard(ctx, user, id); err != nil {
			return err
		}
		return s.boardRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("board deleted", "board", id, "user", user.Id)
	s.notifier.publish(ctx, EventBoardDeleted, DeletedEvent{Id: id, User: user.Id})
	return nil
}

func (s *BoardService) authorizedBoard(ctx context.Context, user *entities.User, id int64) (*entities.Board, error) {
	board, err := s.boardRepo.FindById(ctx, id)
	return access.Authorize(user, board, err)
}

func (s *BoardService) checkNameFree(ctx context.Context, userID int64, name string, excludeID int64) error {
	taken, err := s.boardRepo.ExistsByName(ctx, userID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Validationf("board with this name already exists")
	}
	return nil
}
