package command

import "board-service/internal/application/common"

type CreateBoardCommand struct {
	Name string `json:"name"`
}

type UpdateBoardCommand struct {
	Id   int64  `json:"-"`
	Name string `json:"name"`
}

type BoardCommandResult struct {
	Result *common.BoardResult `json:"result"`
}
