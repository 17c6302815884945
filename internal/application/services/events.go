package services

import (
	"context"

	"github.com/charmbracelet/log"

	"board-service/internal/application/interfaces"
)

const (
	EventBoardCreated  = "board.created"
	EventBoardUpdated  = "board.updated"
	EventBoardDeleted  = "board.deleted"
	EventColumnCreated = "column.created"
	EventColumnUpdated = "column.updated"
	EventColumnDeleted = "column.deleted"
	EventColumnMoved   = "column.moved"
	EventCardCreated   = "card.created"
	EventCardUpdated   = "card.updated"
	EventCardDeleted   = "card.deleted"
	EventCardMoved     = "card.moved"
)

// DeletedEvent is the payload of the *.deleted subjects.
type DeletedEvent struct {
	Id   int64 `json:"id"`
	User int64 `json:"user"`
}

// notifier publishes events after a commit. Failures are logged only; the
// change is already stored.
type notifier struct {
	publisher interfaces.EventPublisher
	logger    *log.Logger
}

func (n notifier) publish(ctx context.Context, subject string, payload any) {
	if n.publisher == nil {
		return
	}
	if err := n.publisher.Publish(ctx, subject, payload); err != nil {
		n.logger.Warn("publish event failed", "subject", subject, "err", err)
	}
}
