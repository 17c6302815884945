package postgres

import (
	"context"

	"gorm.io/gorm"

	"board-service/internal/domain/entities"
	"board-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := r.mapToModel(userEntity)
	if err := conn(ctx, r.db).Create(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}
	userEntity.Id = userModel.ID

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userModel.ID)
}

func (r *UserRepository) FindById(ctx context.Context, id int64) (*entities.User, error) {
	var userModel UserModel
	if err := conn(ctx, r.db).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := conn(ctx, r.db).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) LockById(ctx context.Context, id int64) (*entities.User, error) {
	var userModel UserModel
	if err := forUpdate(conn(ctx, r.db)).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translate(err, "user")
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, user *entities.ValidatedUser) error {
	u := user.GetUser()
	return r.write(ctx, u.Id, map[string]any{
		"password":   u.Password,
		"updated_at": u.UpdatedAt,
	})
}

func (r *UserRepository) UpdateSubscription(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	u := user.GetUser()
	err := r.write(ctx, u.Id, map[string]any{
		"subscription": string(u.Subscription),
		"updated_at":   u.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	// Read back the updated user to ensure data integrity
	return r.FindById(ctx, u.Id)
}

// write updates only the given columns so that concurrent changes to other
// fields of the same user survive.
func (r *UserRepository) write(ctx context.Context, id int64, values map[string]any) error {
	res := conn(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Updates(values)
	if res.Error == nil && res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "user")
	}
	return translate(res.Error, "user")
}

func (r *UserRepository) mapToModel(u *entities.User) UserModel {
	return UserModel{
		ID:           u.Id,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		Email:        u.Email,
		Name:         u.Name,
		Password:     u.Password,
		IsAdmin:      u.IsAdmin,
		IsActive:     u.IsActive,
		Subscription: string(u.Subscription),
	}
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:           userModel.ID,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		Email:        userModel.Email,
		Name:         userModel.Name,
		Password:     userModel.Password,
		IsAdmin:      userModel.IsAdmin,
		IsActive:     userModel.IsActive,
		Subscription: entities.Subscription(userModel.Subscription),
	}
}
