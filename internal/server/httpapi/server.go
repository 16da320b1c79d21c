// Package httpapi exposes the service layer as an HTTP+JSON REST API under
// /api/v1. Handlers translate between wire payloads and service calls; all
// error mapping happens in one place (respond.go).
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avelichko/careernet/internal/logging"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/avelichko/careernet/internal/server/services"
)

// UserProvider is the identity surface the handlers need.
type UserProvider interface {
	Signup(ctx context.Context, p services.SignupParams) (*models.User, string, error)
	DispatchWelcome(user *models.User)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd *models.ProfileUpdate) (*models.User, error)
	Suggestions(ctx context.Context, userID string) ([]*models.User, error)
}

type PostProvider interface {
	Create(ctx context.Context, authorID, content, imageKey string) (*models.Post, error)
	Feed(ctx context.Context) ([]*models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, userID, postID string) error
	Comments(ctx context.Context, postID string) ([]*models.Comment, error)
	AddComment(ctx context.Context, userID, postID, content string) (*models.Comment, error)
	ToggleLike(ctx context.Context, userID, postID string) (bool, error)
}

type ConnectionProvider interface {
	Request(ctx context.Context, requesterID, recipientID string) (*models.Connection, error)
	Accept(ctx context.Context, userID, connectionID string) error
	Reject(ctx context.Context, userID, connectionID string) error
	List(ctx context.Context, userID string) ([]*models.Connection, error)
	Pending(ctx context.Context, userID string) ([]*models.Connection, error)
}

type NotificationProvider interface {
	List(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	Delete(ctx context.Context, userID, notificationID string) error
}

type ImageProvider interface {
	NewUploadURL(ctx context.Context) (string, string, error)
	GetURL(ctx context.Context, key string) (string, error)
}

// Server holds handler dependencies and the session cookie policy.
type Server struct {
	log           logging.Logger
	users         UserProvider
	posts         PostProvider
	connections   ConnectionProvider
	notifications NotificationProvider
	images        ImageProvider
	cookies       CookiePolicy
}

func NewServer(
	log logging.Logger,
	users UserProvider,
	posts PostProvider,
	connections ConnectionProvider,
	notifications NotificationProvider,
	images ImageProvider,
	cookies CookiePolicy,
) *Server {
	return &Server{
		log:           log,
		users:         users,
		posts:         posts,
		connections:   connections,
		notifications: notifications,
		images:        images,
		cookies:       cookies,
	}
}

// Routes builds the chi router. Assessment endpoints are public; everything
// else behind /auth/signup|login|logout requires a valid session cookie.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)

		r.Get("/assessment/questions", s.handleAssessmentQuestions)
		r.Post("/assessment", s.handleAssessment)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)

			r.Get("/posts", s.handleFeed)
			r.Post("/posts", s.handleCreatePost)
			r.Get("/posts/{id}", s.handleGetPost)
			r.Delete("/posts/{id}", s.handleDeletePost)
			r.Get("/posts/{id}/comments", s.handleListComments)
			r.Post("/posts/{id}/comments", s.handleAddComment)
			r.Post("/posts/{id}/like", s.handleToggleLike)

			r.Get("/users/suggestions", s.handleSuggestions)
			r.Put("/users/profile", s.handleUpdateProfile)
			r.Get("/users/{username}", s.handleGetProfile)

			r.Post("/connections/request/{userId}", s.handleConnectionRequest)
			r.Put("/connections/{id}/accept", s.handleConnectionAccept)
			r.Put("/connections/{id}/reject", s.handleConnectionReject)
			r.Get("/connections", s.handleConnectionList)
			r.Get("/connections/requests", s.handleConnectionPending)

			r.Get("/notifications", s.handleNotificationList)
			r.Put("/notifications/{id}/read", s.handleNotificationMarkRead)
			r.Delete("/notifications/{id}", s.handleNotificationDelete)

			r.Post("/images/upload-url", s.handleImageUploadURL)
			r.Get("/images/*", s.handleImageGetURL)
		})
	})

	return r
}
