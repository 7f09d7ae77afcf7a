package upstream

import (
	"context"
	"errors"

	"github.com/campus-hq/uni-admin-gateway/internal/models"
	appErrors "github.com/campus-hq/uni-admin-gateway/pkg/errors"
)

// ObtainToken exchanges credentials for a token pair at the upstream's
// token endpoint. Any upstream rejection of the credentials collapses into
// ErrInvalidCredentials so callers never leak which part was wrong.
func (c *Client) ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	payload := map[string]string{
		"username": username,
		"password": password,
	}

	var pair models.TokenPair
	if err := c.Post(ctx, "token/", payload, &pair); err != nil {
		if errors.Is(err, appErrors.ErrUnauthorized) || errors.Is(err, appErrors.ErrValidation) {
			return models.TokenPair{}, appErrors.ErrInvalidCredentials
		}
		return models.TokenPair{}, err
	}
	if pair.Access == "" {
		return models.TokenPair{}, appErrors.Clone(appErrors.ErrUpstream, "token endpoint returned no access token")
	}
	return pair, nil
}
