package postgres

import "time"

type UserModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	Name         string `gorm:"size:255;not null"`
	Password     string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null"`
	IsActive     bool   `gorm:"not null"`
	Subscription string `gorm:"size:20;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type BoardModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_boards_user_name"`
	UserID    int64     `gorm:"not null;index;uniqueIndex:idx_boards_user_name"`
	User      UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (BoardModel) TableName() string {
	return "boards"
}

type ColumnModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"size:255;not null;uniqueIndex:idx_columns_board_name"`
	Color     string     `gorm:"size:20;not null"`
	Position  int        `gorm:"not null"`
	BoardID   int64      `gorm:"not null;index;uniqueIndex:idx_columns_board_name"`
	Board     BoardModel `gorm:"constraint:OnDelete:CASCADE"`
	UpdatedAt time.Time
}

func (ColumnModel) TableName() string {
	return "board_columns"
}

type CardModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:255;not null;uniqueIndex:idx_cards_column_name"`
	Description  *string
	Position     int         `gorm:"not null"`
	ExternalLink *string     `gorm:"size:200"`
	ColumnID     int64       `gorm:"not null;index;uniqueIndex:idx_cards_column_name"`
	Column       ColumnModel `gorm:"constraint:OnDelete:CASCADE"`
	UpdatedAt    time.Time
}

func (CardModel) TableName() string {
	return "cards"
}

type BlacklistedTokenModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	JTI       string    `gorm:"column:jti;size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

func (BlacklistedTokenModel) TableName() string {
	return "blacklisted_tokens"
}
