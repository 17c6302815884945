package entities

import (
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"board-service/internal/domain"
)

type User struct {
	Id           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string
	Name         string
	Password     string
	IsAdmin      bool
	IsActive     bool
	Subscription Subscription
}

func NewUser(email, name, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Email:        NormalizeEmail(email),
		Name:         strings.TrimSpace(name),
		Password:     password,
		IsActive:     true,
		Subscription: SubscriptionFree,
	}
}

// NormalizeEmail lowercases the domain part of an address.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

func (u *User) validate() error {
	if u.Email == "" {
		return domain.Validationf("user must have an email address")
	}
	if addr, err := mail.ParseAddress(u.Email); err != nil || addr.Address != u.Email {
		return domain.Validationf("enter a valid email address")
	}
	if u.Name == "" {
		return domain.Validationf("name must not be empty")
	}
	if len(u.Name) > 255 || len(u.Email) > 255 {
		return domain.Validationf("email and name must be at most 255 characters")
	}
	if u.Password == "" {
		return domain.Validationf("password must not be empty")
	}
	if !u.Subscription.IsValid() {
		return domain.Validationf("%q is not a valid subscription", u.Subscription)
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return domain.Validationf("created_at must be before updated_at")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// SetPassword replaces the stored hash with a hash of password.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return domain.Validationf("password must not be empty")
	}
	u.Password = password
	u.UpdatedAt = time.Now()
	return u.HashPassword()
}

func (u *User) ChangeSubscription(s Subscription) error {
	if !s.IsValid() {
		return domain.Validationf("%q is not a valid subscription", s)
	}
	u.Subscription = s
	u.UpdatedAt = time.Now()
	return nil
}

func (u *User) PromoteToAdmin() {
	u.IsAdmin = true
	u.UpdatedAt = time.Now()
}
