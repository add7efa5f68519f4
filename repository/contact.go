package repository

import (
	"time"

	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/store"
)

// ContactRepo manages the contact-form submission list.
type ContactRepo struct {
	store store.Store
}

func NewContactRepo(s store.Store) *ContactRepo {
	return &ContactRepo{store: s}
}

func (r *ContactRepo) List() []models.ContactMessage {
	return readList[models.ContactMessage](r.store, keyMessages)
}

func (r *ContactRepo) Append(msg models.ContactMessage) (models.ContactMessage, error) {
	msg.ID = newID()
	msg.Timestamp = time.Now()
	msg.Status = "Pending"

	messages := r.List()
	messages = append(messages, msg)
	if err := writeList(r.store, keyMessages, messages); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}
