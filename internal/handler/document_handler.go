package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
)

// documentBody is the request body for document create/update; the
// owning user always comes from the path, never from the body.
type documentBody struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	service domain.DocumentService
	logger  domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service domain.DocumentService, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllDocuments handles GET /docs/{userId}
func (h *DocumentHandler) GetAllDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}

	documents, err := h.service.GetAllDocuments(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Ensure JSON is [] not null when empty.
	if documents == nil {
		documents = make([]domain.Document, 0)
	}

	writeJSON(w, http.StatusOK, documents)
}

// GetDocumentByID handles GET /docs/{userId}/{docId}
func (h *DocumentHandler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}
	docID, ok := pathInt(w, r, "docId")
	if !ok {
		return
	}

	document, err := h.service.GetDocumentByID(docID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, document)
}

// CreateDocument handles POST /docs/{userId}
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}

	var body documentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	document, err := h.service.CreateDocument(domain.NewDocument{
		Name:   body.Name,
		Status: body.Status,
		UserID: userID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, document)
}

// UpdateDocument handles PUT /docs/{userId}/{docId}
func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}
	docID, ok := pathInt(w, r, "docId")
	if !ok {
		return
	}

	var body documentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	document, err := h.service.UpdateDocument(domain.Document{
		ID:     docID,
		Name:   body.Name,
		Status: body.Status,
		UserID: userID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, document)
}

// DeleteDocument handles DELETE /docs/{userId}/{docId}.
// A document that exists under a different owner is not deleted and
// answers 403; an id absent from the collection entirely answers 404.
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt(w, r, "userId")
	if !ok {
		return
	}
	docID, ok := pathInt(w, r, "docId")
	if !ok {
		return
	}

	deleted, err := h.service.DeleteDocument(docID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
