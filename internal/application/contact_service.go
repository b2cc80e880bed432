package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/iamonjarvis/anywork-backend/internal/domain/entity"
	"github.com/iamonjarvis/anywork-backend/internal/domain/repository"
)

var (
	ErrContactListNotFound = errors.New("contact list not found")
	ErrNoContacts          = errors.New("no contacts found")
	// ErrInvalidContactAction covers add-when-present, remove-when-absent
	// and malformed ids; the caller cannot tell these apart.
	ErrInvalidContactAction = errors.New("invalid action or contact not found")
)

// Contact toggle actions.
const (
	ContactActionAdd    = "add"
	ContactActionRemove = "remove"
)

// ContactService maintains per-user contact lists. A contact appears at most
// once per owner.
type ContactService struct {
	Contacts repository.ContactRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewContactService(contacts repository.ContactRepository, users repository.UserRepository, logger *logrus.Logger) *ContactService {
	return &ContactService{Contacts: contacts, Users: users, Logger: logger}
}

// ContactView is a contact entry joined with the referenced user's profile.
type ContactView struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// Add appends the contact to the owner's list, creating the list on first
// use. Returns the list and false when the contact was already present.
func (s *ContactService) Add(ctx context.Context, ownerID, contactID string) (*entity.Contact, bool, error) {
	oid, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, false, ErrInvalidContactAction
	}
	cid, err := bson.ObjectIDFromHex(contactID)
	if err != nil {
		return nil, false, ErrInvalidContactAction
	}

	list, err := s.Contacts.GetByOwner(ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		list = &entity.Contact{UserID: oid}
	} else if err != nil {
		return nil, false, err
	}

	if list.IndexOf(cid) >= 0 {
		return list, false, nil
	}
	list.Contacts = append(list.Contacts, entity.ContactRef{ContactID: cid, AddedOn: time.Now().UTC()})
	if err := s.Contacts.Save(list); err != nil {
		return nil, false, err
	}
	return list, true, nil
}

// Toggle adds or removes a contact. Removing against a nonexistent list
// fails ErrContactListNotFound; a no-op add or remove fails
// ErrInvalidContactAction.
func (s *ContactService) Toggle(ctx context.Context, ownerID, contactID, action string) (*entity.Contact, error) {
	if action != ContactActionAdd && action != ContactActionRemove {
		return nil, ErrInvalidContactAction
	}
	oid, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, ErrInvalidContactAction
	}
	cid, err := bson.ObjectIDFromHex(contactID)
	if err != nil {
		return nil, ErrInvalidContactAction
	}

	list, err := s.Contacts.GetByOwner(ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		if action == ContactActionRemove {
			return nil, ErrContactListNotFound
		}
		list = &entity.Contact{UserID: oid}
	} else if err != nil {
		return nil, err
	}

	idx := list.IndexOf(cid)
	switch {
	case action == ContactActionAdd && idx < 0:
		list.Contacts = append(list.Contacts, entity.ContactRef{ContactID: cid, AddedOn: time.Now().UTC()})
	case action == ContactActionRemove && idx >= 0:
		list.Contacts = append(list.Contacts[:idx], list.Contacts[idx+1:]...)
	default:
		return nil, ErrInvalidContactAction
	}

	if err := s.Contacts.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// List returns the owner's contacts joined with names and emails. A missing
// and an empty list are indistinguishable: both fail ErrNoContacts.
func (s *ContactService) List(ctx context.Context, ownerID string) ([]ContactView, error) {
	list, err := s.Contacts.GetByOwner(ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoContacts
		}
		return nil, err
	}
	if len(list.Contacts) == 0 {
		return nil, ErrNoContacts
	}

	out := make([]ContactView, 0, len(list.Contacts))
	for _, ref := range list.Contacts {
		u, err := s.Users.GetByID(ref.ContactID.Hex())
		if err != nil {
			// Dangling reference; skip it rather than failing the listing.
			if s.Logger != nil && !errors.Is(err, repository.ErrNotFound) {
				s.Logger.WithError(err).WithField("contact_id", ref.ContactID.Hex()).Warn("contact lookup failed")
			}
			continue
		}
		out = append(out, ContactView{ContactID: u.ID.Hex(), Name: u.Name, Email: u.Email})
	}
	if len(out) == 0 {
		return nil, ErrNoContacts
	}
	return out, nil
}
