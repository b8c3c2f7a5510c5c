package storefront

import (
	"context"

	"github.com/dmitrymomot/storefront/core/sanitizer"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/integration/fakestore"
)

// CreateUserForm is the account registration payload. Every field is
// required.
type CreateUserForm struct {
	Username  string `json:"username" sanitize:"trim" validate:"required;min:3"`
	Password  string `json:"password" validate:"required;min:4"`
	Email     string `json:"email" sanitize:"trim;lower" validate:"required;email"`
	Firstname string `json:"firstname" sanitize:"single_line" validate:"required"`
	Lastname  string `json:"lastname" sanitize:"single_line" validate:"required"`
	Phone     string `json:"phone" sanitize:"trim" validate:"required;phone"`
}

// UpdateUserForm replaces an account. Blank fields are sent blank, the way
// the remote API expects a full replacement.
type UpdateUserForm struct {
	Username  string `json:"username" sanitize:"trim" validate:"min:3"`
	Password  string `json:"password" validate:"min:4"`
	Email     string `json:"email" sanitize:"trim;lower" validate:"email"`
	Firstname string `json:"firstname" sanitize:"single_line"`
	Lastname  string `json:"lastname" sanitize:"single_line"`
	Phone     string `json:"phone" sanitize:"trim" validate:"phone"`
}

func cleanForm(form any) error {
	if err := sanitizer.SanitizeStruct(form); err != nil {
		return err
	}
	return validator.ValidateStruct(form)
}

func newUser(username, password, email, first, last, phone string) fakestore.User {
	return fakestore.User{
		Email:    email,
		Username: username,
		Password: password,
		Name:     fakestore.Name{Firstname: first, Lastname: last},
		Address:  fakestore.PlaceholderAddress(),
		Phone:    phone,
	}
}

// CreateUser registers an account. The session is not changed.
func (a *App) CreateUser(ctx context.Context, form CreateUserForm) (fakestore.User, error) {
	if _, err := a.Authorize(RouteCreateUser); err != nil {
		return fakestore.User{}, err
	}
	if err := cleanForm(&form); err != nil {
		return fakestore.User{}, err
	}
	return a.api.CreateUser(ctx, newUser(form.Username, form.Password, form.Email, form.Firstname, form.Lastname, form.Phone))
}

// UpdateUser replaces the account with id userID.
func (a *App) UpdateUser(ctx context.Context, userID string, form UpdateUserForm) (fakestore.User, error) {
	if _, err := a.Authorize(RouteUpdateUser); err != nil {
		return fakestore.User{}, err
	}
	id, err := fakestore.ParseUserID(userID)
	if err != nil {
		return fakestore.User{}, err
	}
	if err := cleanForm(&form); err != nil {
		return fakestore.User{}, err
	}
	return a.api.UpdateUser(ctx, id, newUser(form.Username, form.Password, form.Email, form.Firstname, form.Lastname, form.Phone))
}

// DeleteUser removes the account with id userID. The session is not changed.
func (a *App) DeleteUser(ctx context.Context, userID string) error {
	if _, err := a.Authorize(RouteDeleteUser); err != nil {
		return err
	}
	id, err := fakestore.ParseUserID(userID)
	if err != nil {
		return err
	}
	return a.api.DeleteUser(ctx, id)
}
