package gerrit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/natanaeljr/gerlib/models"
)

func decodeResult[T any](op string, msg Message, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	v, err := decodeMessage[T](msg)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func checkResult(op string, _ Message, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CreateChange creates a new change. Gerrit answers 201 Created.
func (c *Client) CreateChange(ctx context.Context, in models.ChangeInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, "/a/changes/", in, http.StatusCreated)
	return decodeResult[*models.ChangeInfo]("create change", msg, err)
}

// QueryChanges searches changes. The result holds one list per search query:
// with a single query (or none) Gerrit returns a flat list, which is wrapped
// as the only element; with several queries Gerrit returns a list of lists.
func (c *Client) QueryChanges(ctx context.Context, q models.QueryParams) ([][]models.ChangeInfo, error) {
	rawQuery, err := encodeQuery(q)
	if err != nil {
		return nil, fmt.Errorf("query changes: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery("/a/changes/", rawQuery), http.StatusOK)
	if len(q.Search) > 1 {
		return decodeResult[[][]models.ChangeInfo]("query changes", msg, err)
	}

	changes, err := decodeResult[[]models.ChangeInfo]("query changes", msg, err)
	if err != nil {
		return nil, err
	}
	return [][]models.ChangeInfo{changes}, nil
}

// GetChange retrieves a change. opts ask Gerrit to fill in optional fields.
func (c *Client) GetChange(ctx context.Context, changeID string, opts ...models.AdditionalOpt) (*models.ChangeInfo, error) {
	rawQuery, err := encodeQuery(optionsQuery{Options: opts})
	if err != nil {
		return nil, fmt.Errorf("get change: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(changePath(changeID), rawQuery), http.StatusOK)
	return decodeResult[*models.ChangeInfo]("get change", msg, err)
}

// GetChangeDetail retrieves a change with labels, detailed labels, detailed
// accounts, reviewer updates and messages.
func (c *Client) GetChangeDetail(ctx context.Context, changeID string, opts ...models.AdditionalOpt) (*models.ChangeInfo, error) {
	rawQuery, err := encodeQuery(optionsQuery{Options: opts})
	if err != nil {
		return nil, fmt.Errorf("get change detail: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(changePath(changeID, "detail"), rawQuery), http.StatusOK)
	return decodeResult[*models.ChangeInfo]("get change detail", msg, err)
}

// CreateMergePatchSet creates a merge patch set updating the change.
func (c *Client) CreateMergePatchSet(ctx context.Context, changeID string, in models.MergePatchSetInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "merge"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("create merge patch set", msg, err)
}

// SetCommitMessage creates a new patch set with a new commit message.
func (c *Client) SetCommitMessage(ctx context.Context, changeID string, in models.CommitMessageInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PutJSON(ctx, changePath(changeID, "message"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("set commit message", msg, err)
}

// DeleteChange deletes a new or abandoned change.
func (c *Client) DeleteChange(ctx context.Context, changeID string) error {
	msg, err := c.rest.Delete(ctx, changePath(changeID), http.StatusNoContent)
	return checkResult("delete change", msg, err)
}

// GetTopic returns the topic of a change, or "" when none is set.
func (c *Client) GetTopic(ctx context.Context, changeID string) (string, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "topic"), http.StatusOK)
	return decodeResult[string]("get topic", msg, err)
}

// SetTopic sets the topic of a change and returns the new topic.
func (c *Client) SetTopic(ctx context.Context, changeID string, in models.TopicInput) (string, error) {
	msg, err := c.rest.PutJSON(ctx, changePath(changeID, "topic"), in, http.StatusOK)
	return decodeResult[string]("set topic", msg, err)
}

func (c *Client) DeleteTopic(ctx context.Context, changeID string) error {
	msg, err := c.rest.Delete(ctx, changePath(changeID, "topic"), http.StatusNoContent)
	return checkResult("delete topic", msg, err)
}

func (c *Client) GetAssignee(ctx context.Context, changeID string) (*models.AccountInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "assignee"), http.StatusOK)
	return decodeResult[*models.AccountInfo]("get assignee", msg, err)
}

func (c *Client) GetPastAssignees(ctx context.Context, changeID string) ([]models.AccountInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "past_assignees"), http.StatusOK)
	return decodeResult[[]models.AccountInfo]("get past assignees", msg, err)
}

func (c *Client) SetAssignee(ctx context.Context, changeID string, in models.AssigneeInput) (*models.AccountInfo, error) {
	msg, err := c.rest.PutJSON(ctx, changePath(changeID, "assignee"), in, http.StatusOK)
	return decodeResult[*models.AccountInfo]("set assignee", msg, err)
}

// DeleteAssignee removes the assignee and returns the account that was
// assigned.
func (c *Client) DeleteAssignee(ctx context.Context, changeID string) (*models.AccountInfo, error) {
	msg, err := c.rest.Delete(ctx, changePath(changeID, "assignee"), http.StatusOK)
	return decodeResult[*models.AccountInfo]("delete assignee", msg, err)
}

// GetPureRevert checks whether the change is a pure revert of commit, or of
// the commit named in its "This reverts commit" footer when commit is empty.
func (c *Client) GetPureRevert(ctx context.Context, changeID, commit string) (*models.PureRevertInfo, error) {
	rawQuery, err := encodeQuery(pureRevertQuery{Commit: commit})
	if err != nil {
		return nil, fmt.Errorf("get pure revert: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(changePath(changeID, "pure_revert"), rawQuery), http.StatusOK)
	return decodeResult[*models.PureRevertInfo]("get pure revert", msg, err)
}

// AbandonChange abandons a change. A change that is not open yields a
// 409 Conflict, matched by [ErrConflict].
func (c *Client) AbandonChange(ctx context.Context, changeID string, in models.AbandonInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "abandon"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("abandon change", msg, err)
}

func (c *Client) RestoreChange(ctx context.Context, changeID string, in models.RestoreInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "restore"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("restore change", msg, err)
}

func (c *Client) RebaseChange(ctx context.Context, changeID string, in models.RebaseInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "rebase"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("rebase change", msg, err)
}

func (c *Client) MoveChange(ctx context.Context, changeID string, in models.MoveInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "move"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("move change", msg, err)
}

// RevertChange creates a change reverting the given one and returns it.
func (c *Client) RevertChange(ctx context.Context, changeID string, in models.RevertInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "revert"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("revert change", msg, err)
}

// RevertSubmission reverts every change of the submission the change
// belongs to.
func (c *Client) RevertSubmission(ctx context.Context, changeID string, in models.RevertInput) (*models.RevertSubmissionInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "revert_submission"), in, http.StatusOK)
	return decodeResult[*models.RevertSubmissionInfo]("revert submission", msg, err)
}

func (c *Client) SubmitChange(ctx context.Context, changeID string, in models.SubmitInput) (*models.ChangeInfo, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "submit"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("submit change", msg, err)
}

// ChangesSubmittedTogether lists the changes that would be submitted with
// the given one. NON_VISIBLE_CHANGES is always requested so the count of
// hidden changes is filled in.
func (c *Client) ChangesSubmittedTogether(ctx context.Context, changeID string, opts ...models.AdditionalOpt) (*models.SubmittedTogetherInfo, error) {
	all := make([]models.AdditionalOpt, 0, len(opts)+1)
	all = append(all, models.OptNonVisibleChanges)
	all = append(all, opts...)

	rawQuery, err := encodeQuery(optionsQuery{Options: all})
	if err != nil {
		return nil, fmt.Errorf("changes submitted together: %w", err)
	}

	msg, err := c.rest.Get(ctx, withQuery(changePath(changeID, "submitted_together"), rawQuery), http.StatusOK)
	return decodeResult[*models.SubmittedTogetherInfo]("changes submitted together", msg, err)
}

func (c *Client) GetIncludedIn(ctx context.Context, changeID string) (*models.IncludedInInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "in"), http.StatusOK)
	return decodeResult[*models.IncludedInInfo]("get included in", msg, err)
}

// IndexChange adds or updates the change in the secondary index.
func (c *Client) IndexChange(ctx context.Context, changeID string) error {
	msg, err := c.rest.Post(ctx, changePath(changeID, "index"), http.StatusNoContent)
	return checkResult("index change", msg, err)
}

// ListChangeComments lists the published comments of all revisions, keyed
// by file path.
func (c *Client) ListChangeComments(ctx context.Context, changeID string) (map[string][]models.CommentInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "comments"), http.StatusOK)
	return decodeResult[map[string][]models.CommentInfo]("list change comments", msg, err)
}

func (c *Client) ListChangeRobotComments(ctx context.Context, changeID string) (map[string][]models.RobotCommentInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "robotcomments"), http.StatusOK)
	return decodeResult[map[string][]models.RobotCommentInfo]("list change robot comments", msg, err)
}

// ListChangeDrafts lists the caller's draft comments of all revisions.
func (c *Client) ListChangeDrafts(ctx context.Context, changeID string) (map[string][]models.CommentInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "drafts"), http.StatusOK)
	return decodeResult[map[string][]models.CommentInfo]("list change drafts", msg, err)
}

// CheckChange runs consistency checks; problems are reported in
// [models.ChangeInfo.Problems].
func (c *Client) CheckChange(ctx context.Context, changeID string) (*models.ChangeInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "check"), http.StatusOK)
	return decodeResult[*models.ChangeInfo]("check change", msg, err)
}

// FixChange runs consistency checks and fixes what it can. in may be nil.
func (c *Client) FixChange(ctx context.Context, changeID string, in *models.FixInput) (*models.ChangeInfo, error) {
	msg, err := postOptional(ctx, c.rest, changePath(changeID, "check"), in, http.StatusOK)
	return decodeResult[*models.ChangeInfo]("fix change", msg, err)
}

// SetWorkInProgress marks the change as work in progress. in may be nil.
func (c *Client) SetWorkInProgress(ctx context.Context, changeID string, in *models.WorkInProgressInput) error {
	msg, err := postOptional(ctx, c.rest, changePath(changeID, "wip"), in, http.StatusOK)
	return checkResult("set work in progress", msg, err)
}

// SetReadyForReview marks the change as ready for review. in may be nil.
func (c *Client) SetReadyForReview(ctx context.Context, changeID string, in *models.WorkInProgressInput) error {
	msg, err := postOptional(ctx, c.rest, changePath(changeID, "ready"), in, http.StatusOK)
	return checkResult("set ready for review", msg, err)
}

// MarkPrivate marks the change private. Gerrit answers 201 Created, or
// 200 OK when the change already was private.
func (c *Client) MarkPrivate(ctx context.Context, changeID string, in *models.PrivateInput) error {
	msg, err := postOptional(ctx, c.rest, changePath(changeID, "private"), in, http.StatusCreated, http.StatusOK)
	return checkResult("mark private", msg, err)
}

// UnmarkPrivate removes the private flag. With an input the request is sent
// as POST to private.delete since DELETE requests cannot carry a body.
func (c *Client) UnmarkPrivate(ctx context.Context, changeID string, in *models.PrivateInput) error {
	var (
		msg Message
		err error
	)
	if in != nil {
		msg, err = c.rest.PostJSON(ctx, changePath(changeID, "private.delete"), in, http.StatusNoContent)
	} else {
		msg, err = c.rest.Delete(ctx, changePath(changeID, "private"), http.StatusNoContent)
	}
	return checkResult("unmark private", msg, err)
}

func (c *Client) IgnoreChange(ctx context.Context, changeID string) error {
	msg, err := c.rest.Put(ctx, changePath(changeID, "ignore"), http.StatusOK)
	return checkResult("ignore change", msg, err)
}

func (c *Client) UnignoreChange(ctx context.Context, changeID string) error {
	msg, err := c.rest.Put(ctx, changePath(changeID, "unignore"), http.StatusOK)
	return checkResult("unignore change", msg, err)
}

func (c *Client) MarkAsReviewed(ctx context.Context, changeID string) error {
	msg, err := c.rest.Put(ctx, changePath(changeID, "reviewed"), http.StatusOK)
	return checkResult("mark as reviewed", msg, err)
}

func (c *Client) MarkAsUnreviewed(ctx context.Context, changeID string) error {
	msg, err := c.rest.Put(ctx, changePath(changeID, "unreviewed"), http.StatusOK)
	return checkResult("mark as unreviewed", msg, err)
}

func (c *Client) GetHashtags(ctx context.Context, changeID string) ([]string, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "hashtags"), http.StatusOK)
	return decodeResult[[]string]("get hashtags", msg, err)
}

// SetHashtags adds and removes hashtags and returns the resulting set.
func (c *Client) SetHashtags(ctx context.Context, changeID string, in models.HashtagsInput) ([]string, error) {
	msg, err := c.rest.PostJSON(ctx, changePath(changeID, "hashtags"), in, http.StatusOK)
	return decodeResult[[]string]("set hashtags", msg, err)
}

func (c *Client) ListChangeMessages(ctx context.Context, changeID string) ([]models.ChangeMessageInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "messages"), http.StatusOK)
	return decodeResult[[]models.ChangeMessageInfo]("list change messages", msg, err)
}

func (c *Client) GetChangeMessage(ctx context.Context, changeID, messageID string) (*models.ChangeMessageInfo, error) {
	msg, err := c.rest.Get(ctx, changePath(changeID, "messages", url.PathEscape(messageID)), http.StatusOK)
	return decodeResult[*models.ChangeMessageInfo]("get change message", msg, err)
}

// DeleteChangeMessage replaces the text of a change message and returns the
// updated message. in may be nil.
func (c *Client) DeleteChangeMessage(ctx context.Context, changeID, messageID string, in *models.DeleteChangeMessageInput) (*models.ChangeMessageInfo, error) {
	path := changePath(changeID, "messages", url.PathEscape(messageID))

	var (
		msg Message
		err error
	)
	if in != nil {
		msg, err = c.rest.PostJSON(ctx, path+"/delete", in, http.StatusOK)
	} else {
		msg, err = c.rest.Delete(ctx, path, http.StatusOK)
	}
	return decodeResult[*models.ChangeMessageInfo]("delete change message", msg, err)
}

// postOptional posts in as JSON, or sends an empty POST when in is nil.
func postOptional[T any](ctx context.Context, r *REST, path string, in *T, expected ...int) (Message, error) {
	if in == nil {
		return r.Post(ctx, path, expected...)
	}
	return r.PostJSON(ctx, path, in, expected...)
}
