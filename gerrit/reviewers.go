package gerrit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/natanaeljr/gerlib/models"
)

// SuggestReviewersOptions narrows down reviewer suggestions.
type SuggestReviewersOptions struct {
	// Limit caps the number of suggestions. Zero leaves the server default.
	Limit int
	// ExcludeGroups drops groups from the suggestions.
	ExcludeGroups bool
	// CC suggests accounts to add in the CC state instead of as reviewers.
	CC bool
}

func (c *Client) ListReviewers(ctx context.Context, changeID string) ([]models.ReviewerInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "reviewers")+"/", http.StatusOK)
	return decodeResult[[]models.ReviewerInfo]("list reviewers", msg, err)
}

// SuggestReviewers suggests accounts and groups matching query that can be
// added to the change.
func (c *Client) SuggestReviewers(ctx context.Context, changeID, query string, opts SuggestReviewersOptions) ([]models.SuggestedReviewerInfo, error) {
	q := suggestReviewersQuery{
		Query:         query,
		Limit:         opts.Limit,
		ExcludeGroups: opts.ExcludeGroups,
	}
	if opts.CC {
		q.ReviewerState = string(models.ReviewerStateCC)
	}

	rawQuery, err := encodeQuery(q)
	if err != nil {
		return nil, fmt.Errorf("suggest reviewers: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(changePath(changeID, "suggest_reviewers"), rawQuery), http.StatusOK)
	return decodeResult[[]models.SuggestedReviewerInfo]("suggest reviewers", msg, err)
}

// GetReviewer retrieves one reviewer of the change. Gerrit answers with a
// one element list, which is unwrapped; a bare object is accepted as well.
func (c *Client) GetReviewer(ctx context.Context, changeID, accountID string) (*models.ReviewerInfo, error) {
	const op = "get reviewer"

	msg, err := c.rest.Get(ctx, reviewerPath(changeID, accountID), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	text, err := msg.JSON()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !strings.HasPrefix(strings.TrimSpace(text), "[") {
		return decodeResult[*models.ReviewerInfo](op, msg, nil)
	}

	list, err := decodeResult[[]models.ReviewerInfo](op, msg, nil)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w: empty reviewer list", op, ErrInvalidJSONResponse)
	}
	return &list[0], nil
}

// AddReviewer adds an account or a group as reviewer or CC.
func (c *Client) AddReviewer(ctx context.Context, changeID string, in models.ReviewerInput) (*models.AddReviewerResult, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "reviewers")+"/", in, http.StatusOK)
	return decodeResult[*models.AddReviewerResult]("add reviewer", msg, err)
}

// DeleteReviewer removes a reviewer from the change. in may be nil.
func (c *Client) DeleteReviewer(ctx context.Context, changeID, accountID string, in *models.DeleteReviewerInput) error {
	path := reviewerPath(changeID, accountID)

	var (
		msg Message
		err error
	)
	if in != nil {
		msg, err = c.rest.PostJSON(ctx, path+"/delete", in, http.StatusNoContent)
	} else {
		msg, err = c.rest.Delete(ctx, path, http.StatusNoContent)
	}
	return checkResult("delete reviewer", msg, err)
}

// ListVotes returns the votes of a reviewer keyed by label name.
func (c *Client) ListVotes(ctx context.Context, changeID, accountID string) (map[string]int, error) {
	msg, err := c.rest.Get(ctx, reviewerPath(changeID, accountID, "votes")+"/", http.StatusOK)
	return decodeResult[map[string]int]("list votes", msg, err)
}

// DeleteVote removes a single vote of a reviewer. in may be nil.
func (c *Client) DeleteVote(ctx context.Context, changeID, accountID, label string, in *models.DeleteVoteInput) error {
	path := reviewerPath(changeID, accountID, "votes", url.PathEscape(label))

	var (
		msg Message
		err error
	)
	if in != nil {
		msg, err = c.rest.PostJSON(ctx, path+"/delete", in, http.StatusNoContent)
	} else {
		msg, err = c.rest.Delete(ctx, path, http.StatusNoContent)
	}
	return checkResult("delete vote", msg, err)
}
