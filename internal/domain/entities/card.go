package entities

import (
	"net/url"
	"strings"
	"time"

	"board-service/internal/domain"
)

type Card struct {
	Id           int64
	Name         string
	Description  *string
	Position     int
	ExternalLink *string
	ColumnId     int64
	UpdatedAt    time.Time

	// Column is the loaded parent, with its Board loaded as well.
	Column *Column
}

func NewCard(name string, description, externalLink *string, column *Column) (*Card, error) {
	c := &Card{
		Name:         strings.TrimSpace(name),
		Description:  description,
		ExternalLink: blankToNil(externalLink),
		ColumnId:     column.Id,
		Column:       column,
		UpdatedAt:    time.Now(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Update overwrites the editable fields that are non-nil.
func (c *Card) Update(name, description, externalLink *string) error {
	if name != nil {
		c.Name = strings.TrimSpace(*name)
	}
	if description != nil {
		c.Description = description
	}
	if externalLink != nil {
		c.ExternalLink = blankToNil(externalLink)
	}
	c.UpdatedAt = time.Now()
	return c.validate()
}

func (c *Card) validate() error {
	if err := validateName("card", c.Name); err != nil {
		return err
	}
	if c.ExternalLink != nil {
		return validateURL(*c.ExternalLink)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return domain.Validationf("enter a valid URL")
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
