package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/domain/entities"
	"board-service/internal/domain/ordering"
	"board-service/internal/domain/repositories"
)

type CardRepository struct {
	db       *gorm.DB
	siblings siblings
}

func NewCardRepository(db *gorm.DB) repositories.CardRepository {
	return &CardRepository{
		db: db,
		siblings: siblings{
			db:           db,
			model:        &CardModel{},
			parentModel:  &ColumnModel{},
			parentColumn: "column_id",
		},
	}
}

func (r *CardRepository) Create(ctx context.Context, card *entities.Card) error {
	model := mapCardToModel(card)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&model).Error; err != nil {
		return translate(err, "card")
	}
	card.Id = model.ID
	card.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *CardRepository) FindById(ctx context.Context, id int64) (*entities.Card, error) {
	var model CardModel
	if err := conn(ctx, r.db).Preload("Column.Board").Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "card")
	}
	return mapCardToEntity(&model), nil
}

func (r *CardRepository) ListForUser(ctx context.Context, userID int64, columnID *int64) ([]*entities.Card, error) {
	q := conn(ctx, r.db).Preload("Column.Board").
		Joins("JOIN board_columns ON board_columns.id = cards.column_id").
		Joins("JOIN boards ON boards.id = board_columns.board_id").
		Where("boards.user_id = ?", userID)
	if columnID != nil {
		q = q.Where("cards.column_id = ?", *columnID)
	}

	var models []CardModel
	if err := q.Order("cards.column_id, cards.position").Find(&models).Error; err != nil {
		return nil, translate(err, "card")
	}
	cards := make([]*entities.Card, 0, len(models))
	for i := range models {
		cards = append(cards, mapCardToEntity(&models[i]))
	}
	return cards, nil
}

func (r *CardRepository) ExistsByName(ctx context.Context, columnID int64, name string, excludeID int64) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&CardModel{}).
		Where("column_id = ? AND name = ? AND id <> ?", columnID, name, excludeID).
		Count(&n).Error
	return n > 0, translate(err, "card")
}

func (r *CardRepository) Update(ctx context.Context, card *entities.Card) error {
	return r.write(ctx, card.Id, map[string]any{
		"name":          card.Name,
		"description":   card.Description,
		"external_link": card.ExternalLink,
		"updated_at":    card.UpdatedAt,
	})
}

func (r *CardRepository) Place(ctx context.Context, card *entities.Card) error {
	return r.write(ctx, card.Id, map[string]any{
		"position":   card.Position,
		"column_id":  card.ColumnId,
		"updated_at": card.UpdatedAt,
	})
}

func (r *CardRepository) Save(ctx context.Context, card *entities.Card) error {
	return r.write(ctx, card.Id, map[string]any{
		"name":          card.Name,
		"description":   card.Description,
		"position":      card.Position,
		"external_link": card.ExternalLink,
		"column_id":     card.ColumnId,
		"updated_at":    card.UpdatedAt,
	})
}

func (r *CardRepository) write(ctx context.Context, id int64, values map[string]any) error {
	res := conn(ctx, r.db).Model(&CardModel{}).Where("id = ?", id).Updates(values)
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "card")
	}
	return translate(res.Error, "card")
}

func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&CardModel{})
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "card")
	}
	return translate(res.Error, "card")
}

func (r *CardRepository) LockParent(ctx context.Context, columnID int64) error {
	return r.siblings.lockParent(ctx, columnID, "column")
}

func (r *CardRepository) LastPosition(ctx context.Context, columnID int64) (int, error) {
	return r.siblings.lastPosition(ctx, columnID)
}

func (r *CardRepository) Count(ctx context.Context, columnID int64) (int, error) {
	return r.siblings.count(ctx, columnID)
}

func (r *CardRepository) ShiftPositions(ctx context.Context, columnID, excludeID int64, shift ordering.Shift) error {
	return translate(r.siblings.shift(ctx, columnID, excludeID, shift), "card")
}

func mapCardToModel(c *entities.Card) CardModel {
	return CardModel{
		ID:           c.Id,
		Name:         c.Name,
		Description:  c.Description,
		Position:     c.Position,
		ExternalLink: c.ExternalLink,
		ColumnID:     c.ColumnId,
		UpdatedAt:    c.UpdatedAt,
	}
}

func mapCardToEntity(m *CardModel) *entities.Card {
	c := &entities.Card{
		Id:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Position:     m.Position,
		ExternalLink: m.ExternalLink,
		ColumnId:     m.ColumnID,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Column.ID != 0 {
		c.Column = mapColumnToEntity(&m.Column)
	}
	return c
}
