package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/domain/entities"
	"board-service/internal/domain/ordering"
	"board-service/internal/domain/repositories"
)

type ColumnRepository struct {
	db       *gorm.DB
	siblings siblings
}

func NewColumnRepository(db *gorm.DB) repositories.ColumnRepository {
	return &ColumnRepository{
		db: db,
		siblings: siblings{
			db:           db,
			model:        &ColumnModel{},
			parentModel:  &BoardModel{},
			parentColumn: "board_id",
		},
	}
}

func (r *ColumnRepository) Create(ctx context.Context, column *entities.Column) error {
	model := mapColumnToModel(column)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&model).Error; err != nil {
		return translate(err, "column")
	}
	column.Id = model.ID
	column.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ColumnRepository) FindById(ctx context.Context, id int64) (*entities.Column, error) {
	var model ColumnModel
	if err := conn(ctx, r.db).Preload("Board").Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "column")
	}
	return mapColumnToEntity(&model), nil
}

func (r *ColumnRepository) ListForUser(ctx context.Context, userID int64, boardID *int64) ([]*entities.Column, error) {
	q := conn(ctx, r.db).Preload("Board").
		Joins("JOIN boards ON boards.id = board_columns.board_id").
		Where("boards.user_id = ?", userID)
	if boardID != nil {
		q = q.Where("board_columns.board_id = ?", *boardID)
	}

	var models []ColumnModel
	if err := q.Order("board_columns.board_id, board_columns.position").Find(&models).Error; err != nil {
		return nil, translate(err, "column")
	}
	columns := make([]*entities.Column, 0, len(models))
	for i := range models {
		columns = append(columns, mapColumnToEntity(&models[i]))
	}
	return columns, nil
}

func (r *ColumnRepository) ExistsByName(ctx context.Context, boardID int64, name string, excludeID int64) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&ColumnModel{}).
		Where("board_id = ? AND name = ? AND id <> ?", boardID, name, excludeID).
		Count(&n).Error
	return n > 0, translate(err, "column")
}

func (r *ColumnRepository) Update(ctx context.Context, column *entities.Column) error {
	return r.write(ctx, column.Id, map[string]any{
		"name":       column.Name,
		"color":      string(column.Color),
		"updated_at": column.UpdatedAt,
	})
}

func (r *ColumnRepository) Place(ctx context.Context, column *entities.Column) error {
	return r.write(ctx, column.Id, map[string]any{
		"position":   column.Position,
		"updated_at": column.UpdatedAt,
	})
}

func (r *ColumnRepository) write(ctx context.Context, id int64, values map[string]any) error {
	res := conn(ctx, r.db).Model(&ColumnModel{}).Where("id = ?", id).Updates(values)
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "column")
	}
	return translate(res.Error, "column")
}

func (r *ColumnRepository) Delete(ctx context.Context, id int64) error {
	return NewTxManager(r.db).WithTx(ctx, func(ctx context.Context) error {
		tx := conn(ctx, r.db)
		if err := tx.Where("column_id = ?", id).Delete(&CardModel{}).Error; err != nil {
			return translate(err, "card")
		}
		res := tx.Where("id = ?", id).Delete(&ColumnModel{})
		if res.Error == nil && res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "column")
		}
		return translate(res.Error, "column")
	})
}

func (r *ColumnRepository) LockParent(ctx context.Context, boardID int64) error {
	return r.siblings.lockParent(ctx, boardID, "board")
}

func (r *ColumnRepository) LastPosition(ctx context.Context, boardID int64) (int, error) {
	return r.siblings.lastPosition(ctx, boardID)
}

func (r *ColumnRepository) Count(ctx context.Context, boardID int64) (int, error) {
	return r.siblings.count(ctx, boardID)
}

func (r *ColumnRepository) ShiftPositions(ctx context.Context, boardID, excludeID int64, shift ordering.Shift) error {
	return translate(r.siblings.shift(ctx, boardID, excludeID, shift), "column")
}

func mapColumnToModel(c *entities.Column) ColumnModel {
	return ColumnModel{
		ID:        c.Id,
		Name:      c.Name,
		Color:     string(c.Color),
		Position:  c.Position,
		BoardID:   c.BoardId,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapColumnToEntity(m *ColumnModel) *entities.Column {
	c := &entities.Column{
		Id:        m.ID,
		Name:      m.Name,
		Color:     entities.Color(m.Color),
		Position:  m.Position,
		BoardId:   m.BoardID,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Board.ID != 0 {
		c.Board = mapBoardToEntity(&m.Board)
	}
	return c
}
