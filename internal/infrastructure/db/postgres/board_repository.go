package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/domain/entities"
	"board-service/internal/domain/repositories"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) repositories.BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *entities.Board) error {
	model := mapBoardToModel(board)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(&model).Error; err != nil {
		return translate(err, "board")
	}
	board.Id = model.ID
	board.CreatedAt = model.CreatedAt
	return nil
}

func (r *BoardRepository) FindById(ctx context.Context, id int64) (*entities.Board, error) {
	var model BoardModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err, "board")
	}
	return mapBoardToEntity(&model), nil
}

func (r *BoardRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.Board, error) {
	var models []BoardModel
	if err := conn(ctx, r.db).Where("user_id = ?", userID).Order("id").Find(&models).Error; err != nil {
		return nil, translate(err, "board")
	}
	boards := make([]*entities.Board, 0, len(models))
	for i := range models {
		boards = append(boards, mapBoardToEntity(&models[i]))
	}
	return boards, nil
}

func (r *BoardRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := conn(ctx, r.db).Model(&BoardModel{}).Where("user_id = ?", userID).Count(&n).Error
	return n, translate(err, "board")
}

func (r *BoardRepository) ExistsByName(ctx context.Context, userID int64, name string, excludeID int64) (bool, error) {
	var n int64
	err := conn(ctx, r.db).Model(&BoardModel{}).
		Where("user_id = ? AND name = ? AND id <> ?", userID, name, excludeID).
		Count(&n).Error
	return n > 0, translate(err, "board")
}

func (r *BoardRepository) Update(ctx context.Context, board *entities.Board) error {
	res := conn(ctx, r.db).Model(&BoardModel{}).Where("id = ?", board.Id).Update("name", board.Name)
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "board")
	}
	return translate(res.Error, "board")
}

func (r *BoardRepository) Delete(ctx context.Context, id int64) error {
	return NewTxManager(r.db).WithTx(ctx, func(ctx context.Context) error {
		tx := conn(ctx, r.db)
		columnIDs := tx.Model(&ColumnModel{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("column_id IN (?)", columnIDs).Delete(&CardModel{}).Error; err != nil {
			return translate(err, "card")
		}
		if err := tx.Where("board_id = ?", id).Delete(&ColumnModel{}).Error; err != nil {
			return translate(err, "column")
		}
		res := tx.Where("id = ?", id).Delete(&BoardModel{})
		if res.Error == nil && res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "board")
		}
		return translate(res.Error, "board")
	})
}

func mapBoardToModel(b *entities.Board) BoardModel {
	return BoardModel{
		ID:        b.Id,
		Name:      b.Name,
		UserID:    b.UserId,
		CreatedAt: b.CreatedAt,
	}
}

func mapBoardToEntity(m *BoardModel) *entities.Board {
	return &entities.Board{
		Id:        m.ID,
		Name:      m.Name,
		UserId:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
