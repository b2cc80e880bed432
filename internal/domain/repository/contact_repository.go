package repository

import "github.com/iamonjarvis/anywork-backend/internal/domain/entity"

// ContactRepository stores one contact-list document per owner.
type ContactRepository interface {
	GetByOwner(ownerID string) (*entity.Contact, error)
	Save(c *entity.Contact) error
}
