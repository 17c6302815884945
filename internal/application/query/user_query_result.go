package query

import "board-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
