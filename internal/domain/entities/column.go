package entities

import (
	"strings"
	"time"

	"board-service/internal/domain"
)

type Column struct {
	Id        int64
	Name      string
	Color     Color
	Position  int
	BoardId   int64
	UpdatedAt time.Time

	// Board is the loaded parent. Access checks walk through it.
	Board *Board
}

func NewColumn(name string, color Color, board *Board) (*Column, error) {
	if color == "" {
		color = ColorDefault
	}
	c := &Column{
		Name:      strings.TrimSpace(name),
		Color:     color,
		BoardId:   board.Id,
		Board:     board,
		UpdatedAt: time.Now(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Column) Rename(name string) error {
	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	return c.validate()
}

func (c *Column) Paint(color Color) error {
	c.Color = color
	c.UpdatedAt = time.Now()
	return c.validate()
}

func (c *Column) validate() error {
	if err := validateName("column", c.Name); err != nil {
		return err
	}
	if !c.Color.IsValid() {
		return domain.Validationf("%q is not a valid color", c.Color)
	}
	return nil
}
