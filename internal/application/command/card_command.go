package command

import "board-service/internal/application/common"

type CreateCardCommand struct {
	Name         string  `json:"name"`
	Column       int64   `json:"column"`
	Description  *string `json:"description"`
	ExternalLink *string `json:"external_link"`
}

// UpdateCardCommand leaves nil fields unchanged. A Column different from the
// card's current column moves the card to the end of that column.
type UpdateCardCommand struct {
	Id           int64   `json:"-"`
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ExternalLink *string `json:"external_link"`
	Column       *int64  `json:"column"`
}

type CardCommandResult struct {
	Result *common.CardResult `json:"result"`
}
