package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/lucasvtf/municcasign-code-challenge/internal/domain"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(userHandler *UserHandler, documentHandler *DocumentHandler, logger domain.Logger) http.Handler {
	router := mux.NewRouter()

	router.Use(RequestLogger(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"users-documents-api"}`))
	}).Methods("GET")

	// User routes
	router.HandleFunc("/users", userHandler.GetAllUsers).Methods("GET")
	router.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/users/{userId}", userHandler.GetUserByID).Methods("GET")
	router.HandleFunc("/users/{userId}", userHandler.UpdateUser).Methods("PUT")
	router.HandleFunc("/users/{userId}", userHandler.DeleteUser).Methods("DELETE")

	// Document routes, always scoped by the owning user
	router.HandleFunc("/docs/{userId}", documentHandler.GetAllDocuments).Methods("GET")
	router.HandleFunc("/docs/{userId}", documentHandler.CreateDocument).Methods("POST")
	router.HandleFunc("/docs/{userId}/{docId}", documentHandler.GetDocumentByID).Methods("GET")
	router.HandleFunc("/docs/{userId}/{docId}", documentHandler.UpdateDocument).Methods("PUT")
	router.HandleFunc("/docs/{userId}/{docId}", documentHandler.DeleteDocument).Methods("DELETE")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
		},
	})

	return c.Handler(router)
}
