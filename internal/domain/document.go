package domain

// Document represents a document owned by a user.
// Status is free-form text ("active", "inactive", ...); it is stored and
// returned as-is, never validated against an enum.
type Document struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	UserID int    `json:"userId"`
}

// NewDocument carries the caller-supplied fields of a document to be
// created. The id is assigned by the service.
type NewDocument struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	UserID int    `json:"userId"`
}

// DocumentService defines the use-case operations for documents.
// Every operation validates the owning user before touching the
// document collection.
type DocumentService interface {
	GetAllDocuments(userID int) ([]Document, error)
	GetDocumentByID(id, userID int) (*Document, error)
	CreateDocument(input NewDocument) (*Document, error)
	UpdateDocument(doc Document) (*Document, error)
	DeleteDocument(id, userID int) (bool, error)
}
