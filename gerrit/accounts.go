package gerrit

import (
	"context"
	"net/http"
	"net/url"

	"github.com/natanaeljr/gerlib/models"
)

// GetAccount retrieves an account by id, username, email or "self".
func (c *Client) GetAccount(ctx context.Context, accountID string) (*models.AccountInfo, error) {
	msg, err := c.rest.Get(ctx, "/a/accounts/"+url.PathEscape(accountID), http.StatusOK)
	return decodeResult[*models.AccountInfo]("get account", msg, err)
}

// GetSelf retrieves the account the client authenticates as.
func (c *Client) GetSelf(ctx context.Context) (*models.AccountInfo, error) {
	return c.GetAccount(ctx, "self")
}
