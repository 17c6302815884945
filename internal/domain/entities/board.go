package entities

import (
	"strings"
	"time"

	"board-service/internal/domain"
)

const maxNameLength = 255

type Board struct {
	Id        int64
	Name      string
	UserId    int64
	CreatedAt time.Time
}

func NewBoard(name string, userID int64) (*Board, error) {
	b := &Board{
		Name:      strings.TrimSpace(name),
		UserId:    userID,
		CreatedAt: time.Now(),
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) Rename(name string) error {
	b.Name = strings.TrimSpace(name)
	return b.validate()
}

func (b *Board) validate() error {
	return validateName("board", b.Name)
}

func validateName(kind, name string) error {
	if name == "" {
		return domain.Validationf("%s name must not be empty", kind)
	}
	if len(name) > maxNameLength {
		return domain.Validationf("%s name must be at most %d characters", kind, maxNameLength)
	}
	return nil
}
