package repository

import (
	"strings"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// UserRepo manages the flat list of signup records under the "user" key.
type UserRepo struct {
	store store.Store
}

func NewUserRepo(s store.Store) *UserRepo {
	return &UserRepo{store: s}
}

func (r *UserRepo) List() []models.User {
	return readList[models.User](r.store, keyUsers)
}

// FindByEmail linear-scans for an exact email match.
func (r *UserRepo) FindByEmail(email string) (models.User, bool) {
	for _, u := range r.List() {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *UserRepo) FindByID(id string) (models.User, bool) {
	for _, u := range r.List() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Create appends a new user. Uniqueness is an email-equality scan over the
// trimmed input; there is no index and no further normalization.
func (r *UserRepo) Create(username, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	users := r.List()
	for _, u := range users {
		if u.Email == email {
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.User{
		ID:       newID(),
		Username: username,
		Email:    email,
		Password: password,
	}
	users = append(users, user)
	if err := writeList(r.store, keyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Update overwrites the record with a matching id.
func (r *UserRepo) Update(user models.User) error {
	users := r.List()
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return writeList(r.store, keyUsers, users)
		}
	}
	return ErrUserNotFound
}

// Delete filters the user out of the list. Removing an unknown id is a no-op.
func (r *UserRepo) Delete(id string) error {
	users := r.List()
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return writeList(r.store, keyUsers, kept)
}
