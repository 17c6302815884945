// Package quota gates features by subscription tier.
package quota

import (
	"board-service/internal/domain"
	"board-service/internal/domain/entities"
)

const DefaultMaxFreeBoards = 3

type Policy struct {
	MaxFreeBoards int
}

func NewPolicy(maxFreeBoards int) Policy {
	if maxFreeBoards <= 0 {
		maxFreeBoards = DefaultMaxFreeBoards
	}
	return Policy{MaxFreeBoards: maxFreeBoards}
}

func (p Policy) CanCreateBoard(user *entities.User, ownedBoards int64) bool {
	return user.Subscription != entities.SubscriptionFree || ownedBoards < int64(p.MaxFreeBoards)
}

func (p Policy) CanSetColumnColor(user *entities.User, color entities.Color) bool {
	return user.Subscription != entities.SubscriptionFree || color == entities.ColorDefault
}

// CheckCreateBoard is CanCreateBoard returning a QuotaExceeded error.
func (p Policy) CheckCreateBoard(user *entities.User, ownedBoards int64) error {
	if !p.CanCreateBoard(user, ownedBoards) {
		return domain.Quotaf("only %d boards are allowed for FREE subscription", p.MaxFreeBoards)
	}
	return nil
}

// CheckColumnColor is CanSetColumnColor returning a QuotaExceeded error.
func (p Policy) CheckColumnColor(user *entities.User, color entities.Color) error {
	if !p.CanSetColumnColor(user, color) {
		return domain.Quotaf("you cannot change the column color with a FREE subscription")
	}
	return nil
}
