package gerrit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/natanaeljr/gerlib/models"
)

// ListProjectsOptions filters the project list.
type ListProjectsOptions struct {
	// Prefix limits the result to projects whose name starts with it.
	Prefix string
	// Description includes project descriptions in the result.
	Description bool
	Limit       int
	Skip        int
	// Type is one of ALL, CODE or PERMISSIONS.
	Type string
}

// ListProjects returns the visible projects keyed by name.
func (c *Client) ListProjects(ctx context.Context, opts ListProjectsOptions) (map[string]models.ProjectInfo, error) {
	rawQuery, err := encodeQuery(projectsQuery{
		Description: opts.Description,
		Limit:       opts.Limit,
		Prefix:      opts.Prefix,
		Skip:        opts.Skip,
		Type:        opts.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery("/a/projects/", rawQuery), http.StatusOK)
	return decodeResult[map[string]models.ProjectInfo]("list projects", msg, err)
}

func (c *Client) GetProject(ctx context.Context, name string) (*models.ProjectInfo, error) {
	msg, err := c.rest.Get(ctx, "/a/projects/"+url.PathEscape(name), http.StatusOK)
	return decodeResult[*models.ProjectInfo]("get project", msg, err)
}

func (c *Client) GetProjectDescription(ctx context.Context, name string) (string, error) {
	msg, err := c.rest.Get(ctx, "/a/projects/"+url.PathEscape(name)+"/description", http.StatusOK)
	return decodeResult[string]("get project description", msg, err)
}
