package entities

import "board-service/internal/domain"

// ValidatedUser is a User that passed validation. Its mutators validate
// again before returning.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}

// ChangePassword stores a hash of password once both entries agree.
func (vu *ValidatedUser) ChangePassword(password, confirmation string) error {
	if password != confirmation {
		return domain.Validationf("password and confirm password don't match")
	}
	if err := vu.User.SetPassword(password); err != nil {
		return err
	}
	return vu.User.validate()
}

func (vu *ValidatedUser) ChangeSubscription(s Subscription) error {
	if err := vu.User.ChangeSubscription(s); err != nil {
		return err
	}
	return vu.User.validate()
}
