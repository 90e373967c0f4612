package api

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/wisdom2788/youthguard-go/core/gateway"
	"github.com/wisdom2788/youthguard-go/core/session"
)

// ErrInvalidRegistration is returned when a registration payload fails
// boundary validation. Wrapped errors carry the offending field.
var ErrInvalidRegistration = errors.New("invalid registration")

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,14}$`)
)

const minPasswordLength = 8

// dateOfBirthLayout is the wire format for birth dates.
const dateOfBirthLayout = "2006-01-02"

// RegisterRequest is the structured registration payload. Every field is
// validated before the request reaches the network layer.
type RegisterRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	PhoneNumber string   `json:"phoneNumber"`
	DateOfBirth string   `json:"dateOfBirth"`
	Gender      string   `json:"gender"`
	Location    Location `json:"location"`
	UserType    string   `json:"userType"`
}

// Validate checks the payload at the boundary. Satisfies session.Registration.
func (r RegisterRequest) Validate() error {
	if r.FirstName == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidRegistration)
	}
	if r.LastName == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidRegistration)
	}
	if r.Email == "" || !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("%w: a valid email address is required", ErrInvalidRegistration)
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidRegistration, minPasswordLength)
	}
	if r.PhoneNumber == "" || !phoneRegex.MatchString(r.PhoneNumber) {
		return fmt.Errorf("%w: a valid phone number is required", ErrInvalidRegistration)
	}
	if _, err := time.Parse(dateOfBirthLayout, r.DateOfBirth); err != nil {
		return fmt.Errorf("%w: date of birth must be in YYYY-MM-DD format", ErrInvalidRegistration)
	}
	switch r.Gender {
	case "male", "female", "other":
	default:
		return fmt.Errorf("%w: gender must be male, female, or other", ErrInvalidRegistration)
	}
	if r.Location.State == "" || r.Location.City == "" {
		return fmt.Errorf("%w: location state and city are required", ErrInvalidRegistration)
	}
	switch r.UserType {
	case UserTypeYouth, UserTypeMentor, UserTypeEmployer:
	default:
		return fmt.Errorf("%w: user type must be Youth, Mentor, or Employer", ErrInvalidRegistration)
	}
	return nil
}

// LoginCredentials exposes the credentials used for the chained login after
// successful registration. Satisfies session.Registration.
func (r RegisterRequest) LoginCredentials() (string, string) {
	return r.Email, r.Password
}

// AuthService wraps the authentication endpoints. It satisfies
// session.Authenticator[User] and is normally consumed through the session
// store rather than called directly.
type AuthService struct {
	gw *gateway.Gateway
}

// NewAuthService creates the authentication endpoint wrapper.
func NewAuthService(gw *gateway.Gateway) *AuthService {
	return &AuthService{gw: gw}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Login exchanges credentials for a user record and bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (session.Credentials[User], error) {
	var payload authPayload
	if err := s.gw.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &payload); err != nil {
		return session.Credentials[User]{}, err
	}
	return session.Credentials[User]{User: payload.User, Token: payload.Token}, nil
}

// Register submits a registration. It does not establish a session; the
// session store chains into Login afterwards.
func (s *AuthService) Register(ctx context.Context, reg session.Registration) error {
	return s.gw.Post(ctx, "/auth/register", reg, nil)
}

// Validate confirms the stored token is still accepted by the backend.
func (s *AuthService) Validate(ctx context.Context) error {
	return s.gw.Get(ctx, "/auth/validate", nil)
}
