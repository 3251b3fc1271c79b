//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/config"
	"github.com/merchkit/ordertags/internal/kafka"
	"github.com/merchkit/ordertags/internal/repository"
	"github.com/merchkit/ordertags/internal/shopify"
	"github.com/merchkit/ordertags/internal/storage"
)

type Storage interface {
	ApplyOrderEvent(ctx context.Context, order *repository.Order, tagNames []string) (*storage.Order, error)
	AddTag(ctx context.Context, orderID int64, name string) (*storage.Order, error)
	RemoveTag(ctx context.Context, orderID int64, name string) (*storage.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, patch repository.OrderPatch) (*storage.Order, error)
	ListOrders(ctx context.Context) ([]storage.Order, error)
	ListTags(ctx context.Context) ([]storage.Tag, error)
	CreateTag(ctx context.Context, name string) (*storage.Tag, error)
}

// TagSyncer pushes an order's full desired tag list back to the
// platform after a local mutation.
type TagSyncer interface {
	UpdateOrderTags(ctx context.Context, session shopify.Session, shopifyOrderID string, tags []string) (*shopify.OrderTagsResult, error)
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	syncer       TagSyncer
	userRepo     UserRepo
	cfg          *config.Config
	server       *http.Server
	AuditManager *AuditManager
}

func New(storage Storage, syncer TagSyncer, userRepo UserRepo, cfg *config.Config, producer kafka.Producer) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond, producer, cfg.AuditTopic)
	return &Server{
		storage:      storage,
		syncer:       syncer,
		userRepo:     userRepo,
		cfg:          cfg,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	zap.S().Infof("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	zap.S().Info("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	zap.S().Info("Server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/webhooks/orders", s.handleOrderWebhook).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.basicAuthMiddleware)
	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/export", s.handleExportOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/action", s.handleOrderAction).Methods(http.MethodPost)
	api.HandleFunc("/tags", s.handleListTags).Methods(http.MethodGet)
	api.HandleFunc("/tags", s.handleCreateTag).Methods(http.MethodPost)

	admin := router.Path("/").Subrouter()
	admin.Use(s.basicAuthMiddleware)
	admin.HandleFunc("", s.handleAdminPage).Methods(http.MethodGet)

	return s.auditLogMiddleware(router)
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondActionError is the mutation-action failure shape the admin
// table consumes.
func respondActionError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
