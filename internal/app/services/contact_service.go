package services

import (
	"context"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/models/dto"
)

// ContactService manages address book contacts
type ContactService interface {
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	GetContact(ctx context.Context, id int64) (*models.Contact, error)
	CreateContact(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error)
	UpdateContact(ctx context.Context, id int64, req *dto.ContactRequest) (*models.Contact, error)
	DeleteContact(ctx context.Context, id int64) error
}

type contactServiceImpl struct {
	contacts ContactStore
}

// NewContactService creates a new ContactService
func NewContactService(contacts ContactStore) ContactService {
	return &contactServiceImpl{contacts: contacts}
}

func (s *contactServiceImpl) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *contactServiceImpl) GetContact(ctx context.Context, id int64) (*models.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

func (s *contactServiceImpl) CreateContact(ctx context.Context, req *dto.ContactRequest) (*models.Contact, error) {
	if err := requireFields(map[string]*string{"name": req.Name, "email": req.Email}); err != nil {
		return nil, err
	}

	contact := &models.Contact{}
	applyContact(contact, req)
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *contactServiceImpl) UpdateContact(ctx context.Context, id int64, req *dto.ContactRequest) (*models.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyContact(contact, req)
	if err := s.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func applyContact(c *models.Contact, req *dto.ContactRequest) {
	patchRequired(&c.Name, req.Name)
	patchRequired(&c.Email, req.Email)
	patchOptional(&c.Phone, req.Phone)
	patchOptional(&c.Notes, req.Notes)
}

func (s *contactServiceImpl) DeleteContact(ctx context.Context, id int64) error {
	return s.contacts.Delete(ctx, id)
}
