package service

import (
	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
	apperrors "github.com/lucasvtf/municcasign-code-challenge/pkg/errors"
)

// DocumentService implements domain.DocumentService over a flat-file
// collection. Every operation first confirms the owning user exists via
// the injected checker; on failure the document collection is never
// touched.
type DocumentService struct {
	store  domain.CollectionStore[domain.Document]
	users  domain.UserChecker
	logger domain.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	store domain.CollectionStore[domain.Document],
	users domain.UserChecker,
	logger domain.Logger,
) *DocumentService {
	return &DocumentService{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// GetAllDocuments returns the documents owned by the given user, in
// file order.
func (s *DocumentService) GetAllDocuments(userID int) ([]domain.Document, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, err
	}

	documents, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	owned := make([]domain.Document, 0, len(documents))
	for _, doc := range documents {
		if doc.UserID == userID {
			owned = append(owned, doc)
		}
	}
	return owned, nil
}

// GetDocumentByID returns the document matching both id and owner. A
// document owned by a different user is indistinguishable from an
// absent one.
func (s *DocumentService) GetDocumentByID(id, userID int) (*domain.Document, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return nil, err
	}

	documents, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	for i := range documents {
		if documents[i].ID == id && documents[i].UserID == userID {
			return &documents[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("document not found")
}

// CreateDocument appends a new document with the next free id and
// returns the stored record, assigned id included.
func (s *DocumentService) CreateDocument(input domain.NewDocument) (*domain.Document, error) {
	if _, err := s.users.GetUserByID(input.UserID); err != nil {
		return nil, err
	}

	documents, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	doc := domain.Document{
		ID:     nextID(documents, func(d domain.Document) int { return d.ID }),
		Name:   input.Name,
		Status: input.Status,
		UserID: input.UserID,
	}

	documents = append(documents, doc)
	if err := s.store.Save(documents); err != nil {
		return nil, err
	}

	s.logger.Info("Document created", "document_id", doc.ID, "user_id", doc.UserID)
	return &doc, nil
}

// UpdateDocument replaces the stored record wholesale, matched on both
// id and owner. Unlike user updates there is no field merge.
func (s *DocumentService) UpdateDocument(doc domain.Document) (*domain.Document, error) {
	if _, err := s.users.GetUserByID(doc.UserID); err != nil {
		return nil, err
	}

	documents, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range documents {
		if documents[i].ID == doc.ID && documents[i].UserID == doc.UserID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, apperrors.NewNotFoundError("document not found")
	}

	documents[index] = doc
	if err := s.store.Save(documents); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DeleteDocument removes the document matching both id and owner. When
// no document with the id exists at all the lookup fails; when the id
// exists under a different owner nothing is removed and the returned
// bool is false. This is the one path that distinguishes "not found"
// from "found but not yours".
func (s *DocumentService) DeleteDocument(id, userID int) (bool, error) {
	if _, err := s.users.GetUserByID(userID); err != nil {
		return false, err
	}

	documents, err := s.store.Load()
	if err != nil {
		return false, err
	}

	exists := false
	for _, doc := range documents {
		if doc.ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return false, apperrors.NewNotFoundError("document not found")
	}

	remaining := make([]domain.Document, 0, len(documents))
	for _, doc := range documents {
		if doc.ID == id && doc.UserID == userID {
			continue
		}
		remaining = append(remaining, doc)
	}

	if len(remaining) == len(documents) {
		return false, nil
	}

	if err := s.store.Save(remaining); err != nil {
		return false, err
	}

	s.logger.Info("Document deleted", "document_id", id, "user_id", userID)
	return true, nil
}
