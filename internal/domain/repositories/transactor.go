package repositories

import "context"

// Transactor runs f in a transaction. Repositories called with the context
// passed to f take part in it. A nested call reuses the outer transaction.
type Transactor interface {
	WithTx(ctx context.Context, f func(ctx context.Context) error) error
}
