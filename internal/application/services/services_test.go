package services_test

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board-service/internal/application/command"
	"board-service/internal/application/common"
	"board-service/internal/application/interfaces"
	"board-service/internal/application/services"
	"board-service/internal/domain"
	"board-service/internal/domain/entities"
	"board-service/internal/domain/ordering"
	"board-service/internal/domain/quota"
	"board-service/internal/domain/repositories"
	"board-service/internal/infrastructure"
	"board-service/internal/infrastructure/db/dbtest"
	"board-service/internal/infrastructure/db/postgres"
	"board-service/internal/infrastructure/messaging"
)

type env struct {
	ctx        context.Context
	tx         repositories.Transactor
	userRepo   repositories.UserRepository
	boardRepo  repositories.BoardRepository
	columnRepo repositories.ColumnRepository
	cardRepo   repositories.CardRepository
	policy     quota.Policy
	logger     *log.Logger
	users      interfaces.UserService
	boards     interfaces.BoardService
	columns    interfaces.ColumnService
	cards      interfaces.CardService
	publisher  *messaging.RecordingPublisher
}

func newEnv(t *testing.T) *env {
	db := dbtest.New(t)
	logger := log.New(io.Discard)
	tx := postgres.NewTxManager(db)
	userRepo := postgres.NewUserRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	columnRepo := postgres.NewColumnRepository(db)
	cardRepo := postgres.NewCardRepository(db)
	publisher := &messaging.RecordingPublisher{}
	policy := quota.NewPolicy(quota.DefaultMaxFreeBoards)
	jwt := infrastructure.NewJWTService("test-secret", time.Minute, time.Hour)

	return &env{
		ctx:        context.Background(),
		tx:         tx,
		userRepo:   userRepo,
		boardRepo:  boardRepo,
		columnRepo: columnRepo,
		cardRepo:   cardRepo,
		policy:     policy,
		logger:     logger,
		users:      services.NewUserService(userRepo, postgres.NewTokenRepository(db), jwt, logger),
		boards:     services.NewBoardService(tx, userRepo, boardRepo, policy, publisher, logger),
		columns:    services.NewColumnService(tx, userRepo, boardRepo, columnRepo, policy, publisher, logger),
		cards:      services.NewCardService(tx, columnRepo, cardRepo, publisher, logger),
		publisher:  publisher,
	}
}

func (e *env) register(t *testing.T, email string) (*entities.User, *common.TokenResult) {
	t.Helper()
	res, err := e.users.Register(e.ctx, &command.RegisterUserCommand{
		Email: email, Name: "Tester", Password: "pa55word", Password2: "pa55word",
	})
	require.NoError(t, err)
	user, err := e.users.Authenticate(e.ctx, res.Token.Access)
	require.NoError(t, err)
	return user, res.Token
}

func (e *env) upgrade(t *testing.T, user *entities.User) {
	t.Helper()
	require.NoError(t, user.ChangeSubscription(entities.SubscriptionPaid))
	vu, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	_, err = e.userRepo.UpdateSubscription(e.ctx, vu)
	require.NoError(t, err)
}

func (e *env) board(t *testing.T, user *entities.User, name string) int64 {
	t.Helper()
	res, err := e.boards.CreateBoard(e.ctx, user, &command.CreateBoardCommand{Name: name})
	require.NoError(t, err)
	return res.Result.Id
}

func (e *env) column(t *testing.T, user *entities.User, boardID int64, name string) *common.ColumnResult {
	t.Helper()
	res, err := e.columns.CreateColumn(e.ctx, user, &command.CreateColumnCommand{Name: name, Board: boardID})
	require.NoError(t, err)
	return res.Result
}

func (e *env) card(t *testing.T, user *entities.User, columnID int64, name string) *common.CardResult {
	t.Helper()
	res, err := e.cards.CreateCard(e.ctx, user, &command.CreateCardCommand{Name: name, Column: columnID})
	require.NoError(t, err)
	return res.Result
}

func (e *env) columnOrder(t *testing.T, user *entities.User, boardID int64) []string {
	t.Helper()
	res, err := e.columns.ListColumns(e.ctx, user, &boardID)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Result))
	for i, c := range res.Result {
		require.Equal(t, i+1, c.Position, "positions must be dense")
		names = append(names, c.Name)
	}
	return names
}

func (e *env) cardOrder(t *testing.T, user *entities.User, columnID int64) []string {
	t.Helper()
	res, err := e.cards.ListCards(e.ctx, user, &columnID)
	require.NoError(t, err)
	names := make([]string, 0, len(res.Result))
	for i, c := range res.Result {
		require.Equal(t, i+1, c.Position, "positions must be dense")
		names = append(names, c.Name)
	}
	return names
}

func position(p int) *int { return &p }

func TestUserLifecycle(t *testing.T) {
	e := newEnv(t)
	user, tokens := e.register(t, "alice@Example.COM")
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, entities.SubscriptionFree, user.Subscription)

	_, err := e.users.Register(e.ctx, &command.RegisterUserCommand{
		Email: "alice@example.com", Name: "Again", Password: "x", Password2: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.users.Register(e.ctx, &command.RegisterUserCommand{
		Email: "bob@example.com", Name: "Bob", Password: "one", Password2: "two",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.users.Login(e.ctx, &command.LoginUserCommand{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = e.users.Login(e.ctx, &command.LoginUserCommand{Email: "nobody@example.com", Password: "pa55word"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	login, err := e.users.Login(e.ctx, &command.LoginUserCommand{Email: "alice@example.com", Password: "pa55word"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token.Access)

	refreshed, err := e.users.Refresh(e.ctx, &command.RefreshTokenCommand{Refresh: tokens.Refresh})
	require.NoError(t, err)
	_, err = e.users.Authenticate(e.ctx, refreshed.Access)
	require.NoError(t, err)

	_, err = e.users.Refresh(e.ctx, &command.RefreshTokenCommand{Refresh: tokens.Access})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated, "access token cannot refresh")

	require.NoError(t, e.users.Logout(e.ctx, user, &command.LogoutCommand{RefreshToken: tokens.Refresh}))
	_, err = e.users.Refresh(e.ctx, &command.RefreshTokenCommand{Refresh: tokens.Refresh})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	assert.ErrorIs(t, e.users.Logout(e.ctx, user, &command.LogoutCommand{}), domain.ErrValidation)
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "carol@example.com")

	err := e.users.ChangePassword(e.ctx, user, &command.ChangePasswordCommand{Password: "a", Password2: "b"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, e.users.ChangePassword(e.ctx, user, &command.ChangePasswordCommand{Password: "n3w-pass", Password2: "n3w-pass"}))
	_, err = e.users.Login(e.ctx, &command.LoginUserCommand{Email: "carol@example.com", Password: "pa55word"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = e.users.Login(e.ctx, &command.LoginUserCommand{Email: "carol@example.com", Password: "n3w-pass"})
	assert.NoError(t, err)
}

func TestChangeSubscriptionRequiresAdmin(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "dave@example.com")

	_, err := e.users.ChangeSubscription(e.ctx, user, &command.ChangeSubscriptionCommand{UserId: user.Id, Subscription: "PAID"})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	admin, err := e.users.CreateSuperuser(e.ctx, &command.CreateSuperuserCommand{Email: "root@example.com", Name: "Root", Password: "r00t"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	adminUser, err := e.userRepo.FindById(e.ctx, admin.Id)
	require.NoError(t, err)

	_, err = e.users.ChangeSubscription(e.ctx, adminUser, &command.ChangeSubscriptionCommand{UserId: user.Id, Subscription: "GOLD"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = e.users.ChangeSubscription(e.ctx, adminUser, &command.ChangeSubscriptionCommand{UserId: 999, Subscription: "PAID"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	res, err := e.users.ChangeSubscription(e.ctx, adminUser, &command.ChangeSubscriptionCommand{UserId: user.Id, Subscription: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "PAID", res.Result.Subscription)
}

func TestBoardQuota(t *testing.T) {
	e := newEnv(t)
	free, _ := e.register(t, "free@example.com")
	paid, _ := e.register(t, "paid@example.com")
	e.upgrade(t, paid)

	for i := 1; i <= 3; i++ {
		e.board(t, free, fmt.Sprintf("Board %d", i))
		e.board(t, paid, fmt.Sprintf("Board %d", i))
	}

	_, err := e.boards.CreateBoard(e.ctx, free, &command.CreateBoardCommand{Name: "Board 4"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.EqualError(t, err, "only 3 boards are allowed for FREE subscription")

	_, err = e.boards.CreateBoard(e.ctx, paid, &command.CreateBoardCommand{Name: "Board 4"})
	assert.NoError(t, err)

	list, err := e.boards.ListBoards(e.ctx, free)
	require.NoError(t, err)
	assert.Len(t, list.Result, 3)
}

func TestBoardNamesAndOwnership(t *testing.T) {
	e := newEnv(t)
	alice, _ := e.register(t, "alice@example.com")
	bob, _ := e.register(t, "bob@example.com")

	id := e.board(t, alice, "Sprint1")
	_, err := e.boards.CreateBoard(e.ctx, alice, &command.CreateBoardCommand{Name: "Sprint1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	e.board(t, bob, "Sprint1")

	_, err = e.boards.GetBoard(e.ctx, bob, id)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = e.boards.GetBoard(e.ctx, alice, 12345)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.ErrorIs(t, e.boards.DeleteBoard(e.ctx, bob, id), domain.ErrNotAuthorized)

	updated, err := e.boards.UpdateBoard(e.ctx, alice, &command.UpdateBoardCommand{Id: id, Name: "Sprint2"})
	require.NoError(t, err)
	assert.Equal(t, "Sprint2", updated.Result.Name)

	require.NoError(t, e.boards.DeleteBoard(e.ctx, alice, id))
	_, err = e.boards.GetBoard(e.ctx, alice, id)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestColumnRelocation(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")

	todo := e.column(t, user, boardID, "Todo")
	doing := e.column(t, user, boardID, "Doing")
	assert.Equal(t, 1, todo.Position)
	assert.Equal(t, 2, doing.Position)
	assert.Equal(t, "DEFAULT", todo.Color)

	moved, err := e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: doing.Id, Position: position(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Result.Position)
	assert.Equal(t, []string{"Doing", "Todo"}, e.columnOrder(t, user, boardID))

	e.column(t, user, boardID, "Done")
	e.column(t, user, boardID, "Review")
	_, err = e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: doing.Id, Position: position(3)})
	require.NoError(t, err)
	assert.Equal(t, []string{"Todo", "Done", "Doing", "Review"}, e.columnOrder(t, user, boardID))

	tests := []struct {
		name     string
		position *int
	}{
		{"missing", nil},
		{"zero", position(0)},
		{"past end", position(5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: doing.Id, Position: tt.position})
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Equal(t, []string{"Todo", "Done", "Doing", "Review"}, e.columnOrder(t, user, boardID))
}

func TestMoveToSamePositionPublishesNothing(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	todo := e.column(t, user, boardID, "Todo")
	e.column(t, user, boardID, "Doing")

	before := len(e.publisher.Events)
	res, err := e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: todo.Id, Position: position(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Result.Position)
	assert.Len(t, e.publisher.Events, before)
}

func TestColumnColorQuota(t *testing.T) {
	e := newEnv(t)
	free, _ := e.register(t, "free@example.com")
	paid, _ := e.register(t, "paid@example.com")
	e.upgrade(t, paid)
	freeBoard := e.board(t, free, "Mine")
	paidBoard := e.board(t, paid, "Mine")

	_, err := e.columns.CreateColumn(e.ctx, free, &command.CreateColumnCommand{Name: "Todo", Board: freeBoard, Color: "BLUE"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	res, err := e.columns.CreateColumn(e.ctx, paid, &command.CreateColumnCommand{Name: "Todo", Board: paidBoard, Color: "blue"})
	require.NoError(t, err)
	assert.Equal(t, "BLUE", res.Result.Color)

	_, err = e.columns.CreateColumn(e.ctx, paid, &command.CreateColumnCommand{Name: "Odd", Board: paidBoard, Color: "PURPLE"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	col := e.column(t, free, freeBoard, "Todo")
	red := "RED"
	_, err = e.columns.UpdateColumn(e.ctx, free, &command.UpdateColumnCommand{Id: col.Id, Color: &red})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	rename := "Backlog"
	renamed, err := e.columns.UpdateColumn(e.ctx, free, &command.UpdateColumnCommand{Id: col.Id, Name: &rename})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", renamed.Result.Name)
	assert.Equal(t, "DEFAULT", renamed.Result.Color)
}

func TestCrossUserAccess(t *testing.T) {
	e := newEnv(t)
	alice, _ := e.register(t, "alice@example.com")
	bob, _ := e.register(t, "bob@example.com")
	boardID := e.board(t, alice, "Sprint1")
	col := e.column(t, alice, boardID, "Todo")
	card := e.card(t, alice, col.Id, "Write tests")

	_, err := e.columns.CreateColumn(e.ctx, bob, &command.CreateColumnCommand{Name: "Hijack", Board: boardID})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = e.columns.GetColumn(e.ctx, bob, col.Id)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = e.columns.MoveColumn(e.ctx, bob, &command.MoveCommand{Id: col.Id, Position: position(1)})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = e.cards.CreateCard(e.ctx, bob, &command.CreateCardCommand{Name: "Spam", Column: col.Id})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	_, err = e.cards.GetCard(e.ctx, bob, card.Id)
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	assert.ErrorIs(t, e.cards.DeleteCard(e.ctx, bob, card.Id), domain.ErrNotAuthorized)

	cols, err := e.columns.ListColumns(e.ctx, bob, nil)
	require.NoError(t, err)
	assert.Empty(t, cols.Result)
	cards, err := e.cards.ListCards(e.ctx, bob, &col.Id)
	require.NoError(t, err)
	assert.Empty(t, cards.Result)
}

func TestDeleteCompactsSiblings(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	e.column(t, user, boardID, "A")
	b := e.column(t, user, boardID, "B")
	e.column(t, user, boardID, "C")
	e.card(t, user, b.Id, "inside B")

	require.NoError(t, e.columns.DeleteColumn(e.ctx, user, b.Id))
	assert.Equal(t, []string{"A", "C"}, e.columnOrder(t, user, boardID))

	d := e.column(t, user, boardID, "D")
	assert.Equal(t, 3, d.Position)

	all, err := e.cards.ListCards(e.ctx, user, nil)
	require.NoError(t, err)
	assert.Empty(t, all.Result)
}

func TestCardTransferBetweenColumns(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	todo := e.column(t, user, boardID, "Todo")
	done := e.column(t, user, boardID, "Done")
	e.card(t, user, todo.Id, "a")
	b := e.card(t, user, todo.Id, "b")
	e.card(t, user, todo.Id, "c")
	e.card(t, user, done.Id, "x")

	link := "https://example.com/ticket/1"
	res, err := e.cards.UpdateCard(e.ctx, user, &command.UpdateCardCommand{Id: b.Id, Column: &done.Id, ExternalLink: &link})
	require.NoError(t, err)
	assert.Equal(t, done.Id, res.Result.Column)
	assert.Equal(t, 2, res.Result.Position)
	assert.Equal(t, &link, res.Result.ExternalLink)

	assert.Equal(t, []string{"a", "c"}, e.cardOrder(t, user, todo.Id))
	assert.Equal(t, []string{"x", "b"}, e.cardOrder(t, user, done.Id))
	assert.Contains(t, e.publisher.Subjects(), services.EventCardMoved)

	e.card(t, user, todo.Id, "x")
	x := "x"
	_, err = e.cards.UpdateCard(e.ctx, user, &command.UpdateCardCommand{Id: b.Id, Column: &todo.Id, Name: &x})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []string{"x", "b"}, e.cardOrder(t, user, done.Id), "failed transfer rolls back")

	bad := "not a url"
	_, err = e.cards.UpdateCard(e.ctx, user, &command.UpdateCardCommand{Id: b.Id, ExternalLink: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRandomCardMovesStayDense(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	col := e.column(t, user, boardID, "Todo")

	const n = 6
	ids := make([]int64, 0, n)
	model := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("card-%d", i)
		ids = append(ids, e.card(t, user, col.Id, name).Id)
		model = append(model, name)
	}

	rng := rand.New(rand.NewSource(7))
	for step := 0; step < 25; step++ {
		i := rng.Intn(n)
		target := rng.Intn(n) + 1
		_, err := e.cards.MoveCard(e.ctx, user, &command.MoveCommand{Id: ids[i], Position: position(target)})
		require.NoError(t, err)

		name := fmt.Sprintf("card-%d", i)
		model = moveName(model, name, target)
		require.Equal(t, model, e.cardOrder(t, user, col.Id), "step %d", step)
	}

	res, err := e.cards.ListCards(e.ctx, user, &col.Id)
	require.NoError(t, err)
	positions := make([]int, 0, n)
	for _, c := range res.Result {
		positions = append(positions, c.Position)
	}
	assert.True(t, ordering.IsDense(positions))
}

func moveName(names []string, name string, target int) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	out = append(out[:target-1], append([]string{name}, out[target-1:]...)...)
	return out
}

func TestEventsFollowMutations(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	col := e.column(t, user, boardID, "Todo")
	e.column(t, user, boardID, "Doing")
	card := e.card(t, user, col.Id, "a")
	_, err := e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: col.Id, Position: position(2)})
	require.NoError(t, err)
	require.NoError(t, e.cards.DeleteCard(e.ctx, user, card.Id))
	require.NoError(t, e.boards.DeleteBoard(e.ctx, user, boardID))

	assert.Equal(t, []string{
		services.EventBoardCreated,
		services.EventColumnCreated,
		services.EventColumnCreated,
		services.EventCardCreated,
		services.EventColumnMoved,
		services.EventCardDeleted,
		services.EventBoardDeleted,
	}, e.publisher.Subjects())
}

// columnsWithHook runs beforeUpdate once, inside the caller's transaction,
// just before a column update is written.
type columnsWithHook struct {
	repositories.ColumnRepository
	beforeUpdate func(ctx context.Context)
}

func (r *columnsWithHook) Update(ctx context.Context, column *entities.Column) error {
	if hook := r.beforeUpdate; hook != nil {
		r.beforeUpdate = nil
		hook(ctx)
	}
	return r.ColumnRepository.Update(ctx, column)
}

type cardsWithHook struct {
	repositories.CardRepository
	beforeUpdate func(ctx context.Context)
}

func (r *cardsWithHook) Update(ctx context.Context, card *entities.Card) error {
	if hook := r.beforeUpdate; hook != nil {
		r.beforeUpdate = nil
		hook(ctx)
	}
	return r.CardRepository.Update(ctx, card)
}

func TestRenameAfterConcurrentMoveKeepsPositions(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	todo := e.column(t, user, boardID, "Todo")
	doing := e.column(t, user, boardID, "Doing")

	hooked := &columnsWithHook{ColumnRepository: e.columnRepo}
	columns := services.NewColumnService(e.tx, e.userRepo, e.boardRepo, hooked, e.policy, e.publisher, e.logger)
	hooked.beforeUpdate = func(ctx context.Context) {
		_, err := e.columns.MoveColumn(ctx, user, &command.MoveCommand{Id: doing.Id, Position: position(1)})
		require.NoError(t, err)
	}

	name := "Backlog"
	res, err := columns.UpdateColumn(e.ctx, user, &command.UpdateColumnCommand{Id: todo.Id, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Backlog", res.Result.Name)
	assert.Equal(t, 2, res.Result.Position)
	assert.Equal(t, []string{"Doing", "Backlog"}, e.columnOrder(t, user, boardID))
}

func TestCardEditAfterConcurrentMoveKeepsPositions(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")
	col := e.column(t, user, boardID, "Todo")
	a := e.card(t, user, col.Id, "a")
	e.card(t, user, col.Id, "b")
	c := e.card(t, user, col.Id, "c")

	hooked := &cardsWithHook{CardRepository: e.cardRepo}
	cards := services.NewCardService(e.tx, e.columnRepo, hooked, e.publisher, e.logger)
	hooked.beforeUpdate = func(ctx context.Context) {
		_, err := e.cards.MoveCard(ctx, user, &command.MoveCommand{Id: c.Id, Position: position(1)})
		require.NoError(t, err)
	}

	description := "edited while c moved"
	res, err := cards.UpdateCard(e.ctx, user, &command.UpdateCardCommand{Id: a.Id, Description: &description})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Result.Position)
	assert.Equal(t, []string{"c", "a", "b"}, e.cardOrder(t, user, col.Id))
}

func TestParallelMovesAndRenamesStayDense(t *testing.T) {
	e := newEnv(t)
	user, _ := e.register(t, "alice@example.com")
	boardID := e.board(t, user, "Sprint1")

	const n = 5
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, e.column(t, user, boardID, fmt.Sprintf("col-%d", i)).Id)
	}

	const workers, steps = 4, 10
	errs := make(chan error, workers*steps)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			for step := 0; step < steps; step++ {
				id := ids[rng.Intn(n)]
				var err error
				if step%2 == 0 {
					_, err = e.columns.MoveColumn(e.ctx, user, &command.MoveCommand{Id: id, Position: position(rng.Intn(n) + 1)})
				} else {
					name := fmt.Sprintf("w%d-s%d", w, step)
					_, err = e.columns.UpdateColumn(e.ctx, user, &command.UpdateColumnCommand{Id: id, Name: &name})
				}
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	res, err := e.columns.ListColumns(e.ctx, user, &boardID)
	require.NoError(t, err)
	require.Len(t, res.Result, n)
	positions := make([]int, 0, n)
	for _, c := range res.Result {
		positions = append(positions, c.Position)
	}
	assert.True(t, ordering.IsDense(positions), "positions %v", positions)
}
