package command

import "board-service/internal/application/common"

type CreateColumnCommand struct {
	Name  string `json:"name"`
	Board int64  `json:"board"`
	Color string `json:"color"`
}

// UpdateColumnCommand leaves nil fields unchanged.
type UpdateColumnCommand struct {
	Id    int64   `json:"-"`
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type MoveCommand struct {
	Id       int64 `json:"-"`
	Position *int  `json:"position"`
}

type ColumnCommandResult struct {
	Result *common.ColumnResult `json:"result"`
}
