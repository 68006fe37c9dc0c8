package gerrit

import (
	"context"
	"fmt"
	"net/http"

	"github.com/natanaeljr/gerlib/models"
)

// GetCommit retrieves the commit of a revision. With links set, web links
// are included.
func (c *Client) GetCommit(ctx context.Context, changeID, revisionID string, links bool) (*models.CommitInfo, error) {
	rawQuery, err := encodeQuery(commitQuery{Links: links})
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(revisionPath(changeID, revisionID, "commit"), rawQuery), http.StatusOK)
	return decodeResult[*models.CommitInfo]("get commit", msg, err)
}

func (c *Client) GetDescription(ctx context.Context, changeID, revisionID string) (string, error) {
	msg, err := c.rest.Get(ctx, revisionPath(changeID, revisionID, "description"), http.StatusOK)
	return decodeResult[string]("get description", msg, err)
}

// SetDescription sets the description of a patch set and returns it.
func (c *Client) SetDescription(ctx context.Context, changeID, revisionID string, in models.DescriptionInput) (string, error) {
	msg, err := c.rest.PutJSON(ctx, revisionPath(changeID, revisionID, "description"), in, http.StatusOK)
	return decodeResult[string]("set description", msg, err)
}
