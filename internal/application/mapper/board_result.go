package mapper

import (
	"board-service/internal/application/common"
	"board-service/internal/domain/entities"
)

func NewBoardResultFromEntity(board *entities.Board) *common.BoardResult {
	return &common.BoardResult{
		Id:          board.Id,
		Name:        board.Name,
		CreatedDate: board.CreatedAt,
		User:        board.UserId,
	}
}

func NewBoardResultsFromEntities(boards []*entities.Board) []*common.BoardResult {
	results := make([]*common.BoardResult, 0, len(boards))
	for _, b := range boards {
		results = append(results, NewBoardResultFromEntity(b))
	}
	return results
}

func NewColumnResultFromEntity(column *entities.Column) *common.ColumnResult {
	return &common.ColumnResult{
		Id:        column.Id,
		Name:      column.Name,
		Color:     string(column.Color),
		Position:  column.Position,
		Board:     column.BoardId,
		UpdatedAt: column.UpdatedAt,
	}
}

func NewColumnResultsFromEntities(columns []*entities.Column) []*common.ColumnResult {
	results := make([]*common.ColumnResult, 0, len(columns))
	for _, c := range columns {
		results = append(results, NewColumnResultFromEntity(c))
	}
	return results
}

func NewCardResultFromEntity(card *entities.Card) *common.CardResult {
	return &common.CardResult{
		Id:           card.Id,
		Name:         card.Name,
		Description:  card.Description,
		Position:     card.Position,
		Column:       card.ColumnId,
		ExternalLink: card.ExternalLink,
		UpdatedAt:    card.UpdatedAt,
	}
}

func NewCardResultsFromEntities(cards []*entities.Card) []*common.CardResult {
	results := make([]*common.CardResult, 0, len(cards))
	for _, c := range cards {
		results = append(results, NewCardResultFromEntity(c))
	}
	return results
}
