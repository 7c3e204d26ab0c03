package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
	"github.com/methodhub/backend/utils"
)

// AuthResponse is the register/login payload consumed by the SPA.
type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	User        models.PublicUser `json:"user"`
}

// AuthService issues tokens and checks credentials.
type AuthService struct {
	users  UserStore
	tokens *utils.TokenManager
}

func NewAuthService(users UserStore, tokens *utils.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account. The plaintext password is hashed before it
// reaches the repository and is never returned.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hashStr := string(hash)
	isAdmin := false
	isBanned := false
	user, err := s.users.Create(ctx, models.UserPatch{
		Name:         &name,
		Email:        &email,
		PasswordHash: &hashStr,
		IsAdmin:      &isAdmin,
		IsBanned:     &isBanned,
	})
	if err != nil {
		return nil, err
	}

	return s.respond(*user)
}

// Login checks credentials. Unknown email and wrong password collapse into
// the same answer; a banned account keeps its own message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}
	if user.IsBanned {
		return nil, apperr.Unauthorized("user account is banned")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	return s.respond(*user)
}

// ValidateUser is the live check run on every authenticated request, not
// just at login: a ban takes effect on the user's next request even while
// the token itself is still valid. A nil result means the credential is no
// longer acceptable.
func (s *AuthService) ValidateUser(ctx context.Context, userID int) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.IsBanned {
		return nil, nil
	}
	public := user.Public()
	return &public, nil
}

// GetProfile returns the current user without the password hash.
func (s *AuthService) GetProfile(ctx context.Context, userID int) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized("user not found")
	}
	public := user.Public()
	return &public, nil
}

func (s *AuthService) respond(user models.User) (*AuthResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{AccessToken: token, User: user.Public()}, nil
}
