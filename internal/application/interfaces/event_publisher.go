package interfaces

import "context"

// EventPublisher announces committed changes to other services.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}
