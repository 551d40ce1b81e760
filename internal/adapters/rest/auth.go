package rest

import (
	"context"
	"net/http"

	"sacco-desk/internal/core/domain"
)

// LoginResult represents the payload of a successful login
type LoginResult struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", "", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout invalidates the bearer token server-side.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/logout", token, nil, nil, nil)
}

// Me fetches the profile belonging to the bearer token.
func (c *Client) Me(ctx context.Context, token string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password.
func (c *Client) ChangePassword(ctx context.Context, token, current, updated string) error {
	body := map[string]string{"current_password": current, "new_password": updated}
	return c.do(ctx, http.MethodPost, "/change-password", token, nil, body, nil)
}

// UploadProfilePicture uploads a new profile picture and returns the stored
// picture reference.
func (c *Client) UploadProfilePicture(ctx context.Context, token, fileName string, picture []byte) (string, error) {
	var result struct {
		ProfilePicture string `json:"profile_picture"`
	}
	err := c.upload(ctx, "/profile", token, nil, "profile_picture", fileName, picture, &result)
	if err != nil {
		return "", err
	}
	return result.ProfilePicture, nil
}

// CustomerData fetches the caller's saving and loan balances.
func (c *Client) CustomerData(ctx context.Context, token string) (*domain.Balances, error) {
	var balances domain.Balances
	if err := c.do(ctx, http.MethodGet, "/customerdata", token, nil, nil, &balances); err != nil {
		return nil, err
	}
	return &balances, nil
}
