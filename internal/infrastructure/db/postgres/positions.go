package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"board-service/internal/domain/ordering"
)

// forUpdate adds a row lock on dialects that have one. SQLite already
// serializes writers, so the clause is left out there.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == DriverSQLite {
		return db
	}
	return db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

// siblings runs position queries for one child table keyed by parentColumn.
type siblings struct {
	db           *gorm.DB
	model        any
	parentModel  any
	parentColumn string
}

func (s siblings) lockParent(ctx context.Context, parentID int64, what string) error {
	var id int64
	res := forUpdate(conn(ctx, s.db)).Model(s.parentModel).Select("id").Where("id = ?", parentID).Limit(1).Scan(&id)
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, what)
	}
	return translate(res.Error, what)
}

func (s siblings) lastPosition(ctx context.Context, parentID int64) (int, error) {
	var last int
	err := conn(ctx, s.db).Model(s.model).
		Select("COALESCE(MAX(position), 0)").
		Where(s.parentColumn+" = ?", parentID).
		Scan(&last).Error
	return last, err
}

func (s siblings) count(ctx context.Context, parentID int64) (int, error) {
	var n int64
	err := conn(ctx, s.db).Model(s.model).Where(s.parentColumn+" = ?", parentID).Count(&n).Error
	return int(n), err
}

func (s siblings) shift(ctx context.Context, parentID, excludeID int64, shift ordering.Shift) error {
	if shift.Empty() {
		return nil
	}
	return conn(ctx, s.db).Model(s.model).
		Where(s.parentColumn+" = ? AND id <> ? AND position BETWEEN ? AND ?", parentID, excludeID, shift.From, shift.To).
		UpdateColumn("position", gorm.Expr("position + ?", shift.Delta)).Error
}
