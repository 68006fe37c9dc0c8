package gerrit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"

	"github.com/natanaeljr/gerlib/models"
)

// encodeQuery serializes a struct tagged with `url:"..."` into a query
// string. Failures are reported as [ErrWrongQuery].
func encodeQuery(v any) (string, error) {
	values, err := query.Values(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrongQuery, err)
	}
	return values.Encode(), nil
}

func withQuery(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

func changePath(changeID string, elems ...string) string {
	var b strings.Builder
	b.WriteString("/a/changes/")
	b.WriteString(url.PathEscape(changeID))
	for _, e := range elems {
		b.WriteByte('/')
		b.WriteString(e)
	}
	return b.String()
}

func revisionPath(changeID, revisionID string, elems ...string) string {
	return changePath(changeID, append([]string{"revisions", url.PathEscape(revisionID)}, elems...)...)
}

func reviewerPath(changeID, accountID string, elems ...string) string {
	return changePath(changeID, append([]string{"reviewers", url.PathEscape(accountID)}, elems...)...)
}

type optionsQuery struct {
	Options []models.AdditionalOpt `url:"o,omitempty"`
}

type pureRevertQuery struct {
	Commit string `url:"o,omitempty"`
}

type commitQuery struct {
	Links bool `url:"links,omitempty"`
}

type suggestReviewersQuery struct {
	Query         string `url:"q"`
	Limit         int    `url:"n,omitempty"`
	ExcludeGroups bool   `url:"exclude-groups,omitempty"`
	ReviewerState string `url:"reviewer-state,omitempty"`
}

type projectsQuery struct {
	Description bool   `url:"d,omitempty"`
	Limit       int    `url:"n,omitempty"`
	Prefix      string `url:"p,omitempty"`
	Skip        int    `url:"S,omitempty"`
	Type        string `url:"type,omitempty"`
}
