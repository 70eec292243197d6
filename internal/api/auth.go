package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/postill/internal/common"
	"github.com/dmitrijs2005/postill/internal/models"
)

// Login exchanges credentials for a token and operator profile. The returned
// user carries the token; the caller decides whether to install it via
// SetToken. Invalid credentials surface as common.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var user models.User
	err := c.doJSON(ctx, http.MethodPost, "/login", payload, &user)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return models.User{}, common.ErrInvalidCredentials
		}
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return models.User{}, common.ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("login failed: %w", err)
	}
	return user, nil
}

// Register creates a new operator account. User fields travel as multipart
// form data so an avatar file can be attached.
func (c *Client) Register(ctx context.Context, reg models.Registration) error {
	fields := map[string]string{
		"username": reg.Username,
		"password": reg.Password,
		"email":    reg.Email,
		"name":     reg.Name,
		"role_id":  strconv.FormatInt(reg.RoleID, 10),
	}
	files := map[string]string{"image": reg.ImagePath}

	if err := c.doMultipart(ctx, http.MethodPost, "/register", fields, files, nil); err != nil {
		return fmt.Errorf("register failed: %w", err)
	}
	return nil
}
