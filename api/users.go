package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/wisdom2788/youthguard-go/core/gateway"
	"github.com/wisdom2788/youthguard-go/core/keyring"
)

// ErrMissingUserID is returned when a profile call is made without a stored
// user identifier. The caller should prompt for a fresh login.
var ErrMissingUserID = errors.New("user ID not found, please log in again")

// ProfileUpdate carries the editable profile fields. Zero-valued fields are
// omitted from the request and left unchanged by the backend.
type ProfileUpdate struct {
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

// UsersService wraps the profile endpoints. Profile requests carry a user-id
// header derived from the stored credential entries.
type UsersService struct {
	gw   *gateway.Gateway
	ring keyring.Storage
}

// NewUsersService creates the profile endpoint wrapper.
func NewUsersService(gw *gateway.Gateway, ring keyring.Storage) *UsersService {
	return &UsersService{gw: gw, ring: ring}
}

// Profile fetches the authenticated user's profile.
func (s *UsersService) Profile(ctx context.Context) (User, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := s.gw.Get(ctx, "/users/profile", &user, gateway.WithRequestHeader("user-id", userID)); err != nil {
		return User{}, err
	}
	return user, nil
}

// UpdateProfile applies the given changes and returns the updated record.
func (s *UsersService) UpdateProfile(ctx context.Context, update ProfileUpdate) (User, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return User{}, err
	}

	var user User
	if err := s.gw.Put(ctx, "/users/profile", update, &user, gateway.WithRequestHeader("user-id", userID)); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *UsersService) userID(ctx context.Context) (string, error) {
	userID, err := s.ring.Get(ctx, keyring.KeyUserID)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrMissingUserID
		}
		return "", fmt.Errorf("failed to read stored user ID: %w", err)
	}
	return userID, nil
}
