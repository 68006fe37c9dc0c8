package gerrit

import (
	"context"
	"net/http"

	"github.com/natanaeljr/gerlib/models"
)

// GetVersion returns the version of the Gerrit server.
func (c *Client) GetVersion(ctx context.Context) (models.ServerVersion, error) {
	msg, err := c.rest.Get(ctx, "/a/config/server/version", http.StatusOK)
	return decodeResult[models.ServerVersion]("get server version", msg, err)
}
