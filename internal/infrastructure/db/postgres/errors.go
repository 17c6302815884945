package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"board-service/internal/domain"
)

// uniqueField names the field behind each table's unique index. Tables not
// listed are unique by name within their parent.
var uniqueField = map[string]string{
	"user": "email",
}

// translate maps gorm errors onto the domain error taxonomy.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		field, ok := uniqueField[what]
		if !ok {
			field = "name"
		}
		return domain.Validationf("%s with this %s already exists", what, field)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
