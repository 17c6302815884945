package query

import "board-service/internal/application/common"

type BoardQueryResult struct {
	Result *common.BoardResult `json:"result"`
}

type BoardQueryListResult struct {
	Result []*common.BoardResult `json:"result"`
}

type ColumnQueryResult struct {
	Result *common.ColumnResult `json:"result"`
}

type ColumnQueryListResult struct {
	Result []*common.ColumnResult `json:"result"`
}

type CardQueryResult struct {
	Result *common.CardResult `json:"result"`
}

type CardQueryListResult struct {
	Result []*common.CardResult `json:"result"`
}
