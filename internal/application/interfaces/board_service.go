package interfaces

import (
	"context"

	"board-service/internal/application/command"
	"board-service/internal/application/query"
	"board-service/internal/domain/entities"
)

type BoardService interface {
	ListBoards(ctx context.Context, user *entities.User) (*query.BoardQueryListResult, error)
	CreateBoard(ctx context.Context, user *entities.User, createCommand *command.CreateBoardCommand) (*command.BoardCommandResult, error)
	GetBoard(ctx context.Context, user *entities.User, id int64) (*query.BoardQueryResult, error)
	UpdateBoard(ctx context.Context, user *entities.User, updateCommand *command.UpdateBoardCommand) (*command.BoardCommandResult, error)
	DeleteBoard(ctx context.Context, user *entities.User, id int64) error
}

type ColumnService interface {
	ListColumns(ctx context.Context, user *entities.User, boardID *int64) (*query.ColumnQueryListResult, error)
	CreateColumn(ctx context.Context, user *entities.User, createCommand *command.CreateColumnCommand) (*command.ColumnCommandResult, error)
	GetColumn(ctx context.Context, user *entities.User, id int64) (*query.ColumnQueryResult, error)
	UpdateColumn(ctx context.Context, user *entities.User, updateCommand *command.UpdateColumnCommand) (*command.ColumnCommandResult, error)
	DeleteColumn(ctx context.Context, user *entities.User, id int64) error
	MoveColumn(ctx context.Context, user *entities.User, moveCommand *command.MoveCommand) (*command.ColumnCommandResult, error)
}

type CardService interface {
	ListCards(ctx context.Context, user *entities.User, columnID *int64) (*query.CardQueryListResult, error)
	CreateCard(ctx context.Context, user *entities.User, createCommand *command.CreateCardCommand) (*command.CardCommandResult, error)
	GetCard(ctx context.Context, user *entities.User, id int64) (*query.CardQueryResult, error)
	UpdateCard(ctx context.Context, user *entities.User, updateCommand *command.UpdateCardCommand) (*command.CardCommandResult, error)
	DeleteCard(ctx context.Context, user *entities.User, id int64) error
	MoveCard(ctx context.Context, user *entities.User, moveCommand *command.MoveCommand) (*command.CardCommandResult, error)
}
