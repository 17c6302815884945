package services

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
	"board-service/internal/application/mapper"
	"board-service/internal/application/query"
	"board-service/internal/domain"
	"board-service/internal/domain/access"
	"board-service/internal/domain/entities"
	"board-service/internal/domain/repositories"
)

type CardService struct {
	tx         repositories.Transactor
	columnRepo repositories.ColumnRepository
	cardRepo   repositories.CardRepository
	positions  *PositionManager
	notifier   notifier
	logger     *log.Logger
}

func NewCardService(
	tx repositories.Transactor,
	columnRepo repositories.ColumnRepository,
	cardRepo repositories.CardRepository,
	publisher interfaces.EventPublisher,
	logger *log.Logger,
) interfaces.CardService {
	return &CardService{
		tx:         tx,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		positions:  NewPositionManager(cardRepo),
		notifier:   notifier{publisher: publisher, logger: logger},
		logger:     logger,
	}
}

func (s *CardService) ListCards(ctx context.Context, user *entities.User, columnID *int64) (*query.CardQueryListResult, error) {
	cards, err := s.cardRepo.ListForUser(ctx, user.Id, columnID)
	if err != nil {
		return nil, err
	}
	return &query.CardQueryListResult{Result: mapper.NewCardResultsFromEntities(cards)}, nil
}

func (s *CardService) CreateCard(ctx context.Context, user *entities.User, createCommand *command.CreateCardCommand) (*command.CardCommandResult, error) {
	var card *entities.Card
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		column, err := s.authorizedColumn(ctx, user, createCommand.Column)
		if err != nil {
			return err
		}

		card, err = entities.NewCard(createCommand.Name, createCommand.Description, createCommand.ExternalLink, column)
		if err != nil {
			return err
		}
		position, err := s.positions.Append(ctx, column.Id)
		if err != nil {
			return err
		}
		if err := s.checkNameFree(ctx, column.Id, card.Name, 0); err != nil {
			return err
		}
		card.Position = position
		return s.cardRepo.Create(ctx, card)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewCardResultFromEntity(card)
	s.logger.Debug("card created", "card", card.Id, "column", card.ColumnId, "position", card.Position)
	s.notifier.publish(ctx, EventCardCreated, result)
	return &command.CardCommandResult{Result: result}, nil
}

func (s *CardService) GetCard(ctx context.Context, user *entities.User, id int64) (*query.CardQueryResult, error) {
	card, err := s.authorizedCard(ctx, user, id)
	if err != nil {
		return nil, err
	}
	return &query.CardQueryResult{Result: mapper.NewCardResultFromEntity(card)}, nil
}

// UpdateCard edits the card. When the command names another column the card
// leaves its column, which is compacted, and is appended to the new one.
// Without a column change the card's position is never written, so an edit
// does not need the column lock.
func (s *CardService) UpdateCard(ctx context.Context, user *entities.User, updateCommand *command.UpdateCardCommand) (*command.CardCommandResult, error) {
	var (
		card        *entities.Card
		transferred bool
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		card, err = s.authorizedCard(ctx, user, updateCommand.Id)
		if err != nil {
			return err
		}

		if updateCommand.Column != nil && *updateCommand.Column != card.ColumnId {
			if card, err = s.transfer(ctx, user, card, *updateCommand.Column); err != nil {
				return err
			}
			transferred = true
		}

		if err := card.Update(updateCommand.Name, updateCommand.Description, updateCommand.ExternalLink); err != nil {
			return err
		}
		if updateCommand.Name != nil || transferred {
			if err := s.checkNameFree(ctx, card.ColumnId, card.Name, card.Id); err != nil {
				return err
			}
		}
		if transferred {
			err = s.cardRepo.Save(ctx, card)
		} else {
			err = s.cardRepo.Update(ctx, card)
		}
		if err != nil {
			return err
		}
		card, err = s.cardRepo.FindById(ctx, card.Id)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewCardResultFromEntity(card)
	s.notifier.publish(ctx, EventCardUpdated, result)
	if transferred {
		s.notifier.publish(ctx, EventCardMoved, result)
	}
	return &command.CardCommandResult{Result: result}, nil
}

func (s *CardService) DeleteCard(ctx context.Context, user *entities.User, id int64) error {
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		card, err := s.lockedCard(ctx, user, id)
		if err != nil {
			return err
		}
		if err := s.positions.Remove(ctx, card.ColumnId, card.Id, card.Position); err != nil {
			return err
		}
		return s.cardRepo.Delete(ctx, card.Id)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("card deleted", "card", id, "user", user.Id)
	s.notifier.publish(ctx, EventCardDeleted, DeletedEvent{Id: id, User: user.Id})
	return nil
}

// MoveCard puts the card at the requested position within its column.
func (s *CardService) MoveCard(ctx context.Context, user *entities.User, moveCommand *command.MoveCommand) (*command.CardCommandResult, error) {
	if moveCommand.Position == nil {
		return nil, domain.Validationf("new position is required")
	}
	target := *moveCommand.Position

	var (
		card  *entities.Card
		moved bool
	)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		card, err = s.lockedCard(ctx, user, moveCommand.Id)
		if err != nil {
			return err
		}
		moved, err = s.positions.Relocate(ctx, card.ColumnId, card.Id, card.Position, target)
		if err != nil || !moved {
			return err
		}
		card.Position = target
		card.UpdatedAt = time.Now()
		return s.cardRepo.Place(ctx, card)
	})
	if err != nil {
		return nil, err
	}

	result := mapper.NewCardResultFromEntity(card)
	if moved {
		s.logger.Debug("card moved", "card", card.Id, "column", card.ColumnId, "position", target)
		s.notifier.publish(ctx, EventCardMoved, result)
	}
	return &command.CardCommandResult{Result: result}, nil
}

// transfer detaches card from its column and appends it to targetID. Both
// columns are locked in id order and the card is read again afterwards.
func (s *CardService) transfer(ctx context.Context, user *entities.User, card *entities.Card, targetID int64) (*entities.Card, error) {
	target, err := s.authorizedColumn(ctx, user, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.positions.LockParents(ctx, card.ColumnId, target.Id); err != nil {
		return nil, err
	}
	if card, err = s.authorizedCard(ctx, user, card.Id); err != nil {
		return nil, err
	}

	if err := s.positions.Remove(ctx, card.ColumnId, card.Id, card.Position); err != nil {
		return nil, err
	}
	last, err := s.cardRepo.LastPosition(ctx, target.Id)
	if err != nil {
		return nil, err
	}

	card.ColumnId = target.Id
	card.Column = target
	card.Position = last + 1
	return card, nil
}

func (s *CardService) authorizedColumn(ctx context.Context, user *entities.User, id int64) (*entities.Column, error) {
	column, err := s.columnRepo.FindById(ctx, id)
	return access.Authorize(user, column, err)
}

func (s *CardService) authorizedCard(ctx context.Context, user *entities.User, id int64) (*entities.Card, error) {
	card, err := s.cardRepo.FindById(ctx, id)
	return access.Authorize(user, card, err)
}

// lockedCard authorizes the card, locks its column and reads the card again
// so that its position is current.
func (s *CardService) lockedCard(ctx context.Context, user *entities.User, id int64) (*entities.Card, error) {
	card, err := s.authorizedCard(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if err := s.cardRepo.LockParent(ctx, card.ColumnId); err != nil {
		return nil, err
	}
	return s.authorizedCard(ctx, user, id)
}

func (s *CardService) checkNameFree(ctx context.Context, columnID int64, name string, excludeID int64) error {
	taken, err := s.cardRepo.ExistsByName(ctx, columnID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return domain.Validationf("card with this name already exists")
	}
	return nil
}
