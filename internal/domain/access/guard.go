// Package access decides whether a user may touch a board, column or card by
// walking the ownership chain up to the board's owner.
package access

import (
	"errors"
	"fmt"

	"board-service/internal/domain"
	"board-service/internal/domain/entities"
)

// ErrChainNotLoaded means a parent link needed to reach the owner was not
// loaded by the repository. It is a programming error, not a client error.
var ErrChainNotLoaded = errors.New("ownership chain is not loaded")

// ResolveOwner returns the id of the user that owns resource.
func ResolveOwner(resource any) (int64, error) {
	switch r := resource.(type) {
	case *entities.Board:
		if r == nil {
			return 0, ErrChainNotLoaded
		}
		return r.UserId, nil
	case *entities.Column:
		if r == nil || r.Board == nil || r.Board.Id != r.BoardId {
			return 0, fmt.Errorf("column: %w", ErrChainNotLoaded)
		}
		return ResolveOwner(r.Board)
	case *entities.Card:
		if r == nil || r.Column == nil || r.Column.Id != r.ColumnId {
			return 0, fmt.Errorf("card: %w", ErrChainNotLoaded)
		}
		return ResolveOwner(r.Column)
	default:
		return 0, fmt.Errorf("unsupported resource %T", resource)
	}
}

// Authorize returns resource when user owns it and ErrNotAuthorized otherwise.
// A lookup that found nothing should be passed through Authorize as well, so
// missing and foreign entities look the same to the caller.
func Authorize[T any](user *entities.User, resource T, lookupErr error) (T, error) {
	var zero T
	if lookupErr != nil {
		if errors.Is(lookupErr, domain.ErrNotFound) {
			return zero, domain.ErrNotAuthorized
		}
		return zero, lookupErr
	}
	if user == nil {
		return zero, domain.ErrNotAuthorized
	}
	owner, err := ResolveOwner(resource)
	if err != nil {
		return zero, err
	}
	if owner != user.Id {
		return zero, domain.ErrNotAuthorized
	}
	return resource, nil
}
