package service

import (
	"context"
	"errors"
	"time"

	"campusforum/internal/config"
	"campusforum/internal/http-api/dto"
	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"
	"campusforum/internal/middleware/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUserNotFound       = errors.New("user not found")
)

// SessionStore is the server-side session backend. Revoking a session there
// invalidates the cookie even before the signed token expires.
type SessionStore interface {
	Create(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, sid string) (int64, error)
	Destroy(ctx context.Context, sid string) error
}

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, identifier, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (int64, error)
	GetUser(userID int64) (*models.User, error)
	UpdateProfile(userID int64, req dto.UpdateProfileRequest) (*models.User, error)
}

type authService struct {
	userRepo      repository.UserRepository
	sessions      SessionStore
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionStore, cfg *config.Config) AuthService {
	return &authService{
		userRepo:      userRepo,
		sessions:      sessions,
		sessionSecret: cfg.SessionSecret,
		sessionTTL:    cfg.SessionTTL,
	}
}

// Register creates a new user and opens a session for it, mirroring the
// login-on-register behavior of the registration endpoint.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, "", ErrNameInUse
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, "", ErrEmailInUse
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		// The unique indexes catch the race two concurrent registrations can win
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrEmailInUse
		}
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, "", ErrNameInUse
		}
		return nil, "", err
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by username or email and returns the session token.
func (s *authService) Login(ctx context.Context, identifier, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(identifier)
	if err != nil {
		user, err = s.userRepo.FindByEmail(identifier)
	}
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	sid, _, err := s.parseSessionToken(token)
	if err != nil {
		return ErrInvalidSession
	}
	return s.sessions.Destroy(ctx, sid)
}

// ResolveSession validates the signed cookie and confirms the session is
// still live server-side, returning the owning user id.
func (s *authService) ResolveSession(ctx context.Context, token string) (int64, error) {
	sid, _, err := s.parseSessionToken(token)
	if err != nil {
		return 0, ErrInvalidSession
	}

	userID, err := s.sessions.Resolve(ctx, sid)
	if err != nil {
		return 0, ErrInvalidSession
	}
	return userID, nil
}

func (s *authService) GetUser(userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies a partial profile update; nil fields stay untouched.
func (s *authService) UpdateProfile(userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*req.Email); err == nil {
			return nil, ErrEmailInUse
		}
		user.Email = *req.Email
	}
	if req.RealName != nil {
		user.RealName = *req.RealName
	}
	if req.StudentID != nil {
		user.StudentID = *req.StudentID
	}
	if req.AdmissionYear != nil {
		user.AdmissionYear = *req.AdmissionYear
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailInUse
		}
		return nil, err
	}

	return user, nil
}

// openSession stores the session in the server-side store and wraps its id in
// a signed token for the cookie.
func (s *authService) openSession(ctx context.Context, user *models.User) (string, error) {
	sid, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": user.ID,
		"exp":     time.Now().Add(s.sessionTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

func (s *authService) parseSessionToken(tokenString string) (sid string, userID int64, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil {
		return "", 0, err
	}
	if !token.Valid {
		return "", 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, errors.New("invalid claims")
	}
	sid, ok = claims["sid"].(string)
	if !ok || sid == "" {
		return "", 0, errors.New("missing session id")
	}
	// JSON numbers decode as float64
	if raw, ok := claims["user_id"].(float64); ok {
		userID = int64(raw)
	}
	return sid, userID, nil
}
