package gerrit_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natanaeljr/gerlib/gerrit"
	"github.com/natanaeljr/gerlib/gerrit/gerrittest"
	"github.com/natanaeljr/gerlib/models"
)

func newTestClient(t *testing.T, opts ...gerrit.Option) (*gerrit.Client, *gerrittest.Server) {
	t.Helper()
	srv := gerrittest.NewServer(t)
	client, err := gerrit.NewClient(srv.URL, opts...)
	require.NoError(t, err)
	return client, srv
}

func lastQuery(t *testing.T, srv *gerrittest.Server) url.Values {
	t.Helper()
	got, ok := srv.LastRequest()
	require.True(t, ok)
	values, err := url.ParseQuery(got.RawQuery)
	require.NoError(t, err)
	return values
}

// ── topic ─────────────────────────────────────────────────────────────────────

func TestClient_GetTopic(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/123/topic", http.StatusOK, ")]}'\n\"mytopic\"")

	topic, err := client.GetTopic(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "mytopic", topic)
}

func TestClient_SetTopic(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodPut, "/a/changes/123/topic", http.StatusOK, "release")

	topic, err := client.SetTopic(context.Background(), "123", models.TopicInput{Topic: "release"})
	require.NoError(t, err)
	assert.Equal(t, "release", topic)

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"topic":"release"}`, string(got.Body))
}

func TestClient_DeleteTopic(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodDelete, "/a/changes/123/topic", http.StatusNoContent)

	require.NoError(t, client.DeleteTopic(context.Background(), "123"))
}

// ── change lifecycle ──────────────────────────────────────────────────────────

// TestClient_DeleteChange_NotFound verifies that a 404 answer is reported as
// an unexpected response carrying the status.
func TestClient_DeleteChange_NotFound(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodDelete, "/a/changes/123", http.StatusNotFound, "Not found: 123")

	err := client.DeleteChange(context.Background(), "123")
	require.ErrorIs(t, err, gerrit.ErrUnexpectedHTTPResponse)
	assert.ErrorIs(t, err, gerrit.ErrNotFound)

	code, ok := gerrit.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

// TestClient_AbandonChange_Conflict verifies that a 409 answer exposes the
// server's explanation.
func TestClient_AbandonChange_Conflict(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodPost, "/a/changes/{id}/abandon", http.StatusConflict, "change is merged\n")

	_, err := client.AbandonChange(context.Background(), "myProject~master~I8473b95934b5732ac55d26311a706c9c2bde9940", models.AbandonInput{})
	require.ErrorIs(t, err, gerrit.ErrConflict)

	body, ok := gerrit.ResponseBody(err)
	require.True(t, ok)
	assert.Equal(t, "change is merged\n", string(body))

	got, _ := srv.LastRequest()
	assert.Equal(t, "/a/changes/myProject~master~I8473b95934b5732ac55d26311a706c9c2bde9940/abandon", got.Path)
	assert.JSONEq(t, `{}`, string(got.Body))
}

func TestClient_AbandonChange(t *testing.T) {
	client, srv := newTestClient(t)
	abandoned := gerrittest.Change(42, "Fix build")
	abandoned.Status = models.ChangeStatusAbandoned
	srv.JSON(http.MethodPost, "/a/changes/42/abandon", http.StatusOK, abandoned)

	change, err := client.AbandonChange(context.Background(), "42", models.AbandonInput{
		Message: "superseded",
		Notify:  models.NotifyOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ChangeStatusAbandoned, change.Status)
	assert.Equal(t, 42, change.Number)

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"message":"superseded","notify":"OWNER"}`, string(got.Body))
}

func TestClient_CreateChange(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodPost, "/a/changes/", http.StatusCreated, gerrittest.Change(7, "Add ger"))

	change, err := client.CreateChange(context.Background(), models.ChangeInput{
		Project: "demo",
		Branch:  "master",
		Subject: "Add ger",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, change.Number)
	assert.Equal(t, "demo", change.Project)
}

// TestClient_CreateChange_WrongSuccessStatus verifies that 200 is rejected
// where Gerrit documents 201.
func TestClient_CreateChange_WrongSuccessStatus(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodPost, "/a/changes/", http.StatusOK, gerrittest.Change(7, "Add ger"))

	_, err := client.CreateChange(context.Background(), models.ChangeInput{Project: "demo", Branch: "master", Subject: "x"})
	require.ErrorIs(t, err, gerrit.ErrUnexpectedHTTPResponse)
}

func TestClient_GetChange_Options(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42", http.StatusOK, gerrittest.Change(42, "Fix build"))

	change, err := client.GetChange(context.Background(), "42", models.OptLabels, models.OptCurrentRevision)
	require.NoError(t, err)
	assert.Equal(t, "Fix build", change.Subject)

	assert.Equal(t, []string{"LABELS", "CURRENT_REVISION"}, lastQuery(t, srv)["o"])
}

func TestClient_GetChange_NotJSON(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42", http.StatusOK, "<html>login</html>")

	_, err := client.GetChange(context.Background(), "42")
	require.ErrorIs(t, err, gerrit.ErrNotJSONResponse)

	body, ok := gerrit.ResponseBody(err)
	require.True(t, ok)
	assert.Equal(t, "<html>login</html>", string(body))
}

func TestClient_GetChangeDetail_InvalidJSON(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42/detail", http.StatusOK, ")]}'\n[1,2]")

	_, err := client.GetChangeDetail(context.Background(), "42")
	require.ErrorIs(t, err, gerrit.ErrInvalidJSONResponse)
}

// ── QueryChanges ──────────────────────────────────────────────────────────────

// TestClient_QueryChanges_SingleQuery verifies that a flat answer is wrapped
// as the only result list.
func TestClient_QueryChanges_SingleQuery(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/", http.StatusOK, []models.ChangeInfo{
		gerrittest.Change(1, "One"),
		gerrittest.Change(2, "Two"),
	})

	limit := 2
	results, err := client.QueryChanges(context.Background(), models.QueryParams{
		Search:  models.SearchQueries{models.CookedQuery(models.SearchIs(models.IsOpen), models.BoolAnd, models.SearchOwner("self"))},
		Options: []models.AdditionalOpt{models.OptDetailedAccounts},
		Limit:   &limit,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0], 2)
	assert.Equal(t, "Two", results[0][1].Subject)

	q := lastQuery(t, srv)
	assert.Equal(t, []string{"is:open AND owner:self"}, q["q"])
	assert.Equal(t, []string{"DETAILED_ACCOUNTS"}, q["o"])
	assert.Equal(t, "2", q.Get("n"))
}

// TestClient_QueryChanges_MultiQuery verifies that several queries yield one
// result list per query.
func TestClient_QueryChanges_MultiQuery(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/", http.StatusOK, [][]models.ChangeInfo{
		{gerrittest.Change(1, "Mine")},
		{gerrittest.Change(2, "Review"), gerrittest.Change(3, "Other")},
	})

	results, err := client.QueryChanges(context.Background(), models.QueryParams{
		Search: models.SearchQueries{
			models.RawQuery("is:open owner:self"),
			models.CookedQuery(models.SearchIs(models.IsOpen), models.SearchReviewer("self")),
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Len(t, results[0], 1)
	assert.Len(t, results[1], 2)

	assert.Equal(t, []string{"is:open owner:self", "is:open reviewer:self"}, lastQuery(t, srv)["q"])
}

// TestClient_QueryChanges_BlankQuery verifies that a blank query is refused
// before any request is sent.
func TestClient_QueryChanges_BlankQuery(t *testing.T) {
	client, srv := newTestClient(t)

	_, err := client.QueryChanges(context.Background(), models.QueryParams{
		Search: models.SearchQueries{models.RawQuery("status:open"), models.RawQuery("  ")},
	})
	require.ErrorIs(t, err, gerrit.ErrWrongQuery)
	assert.Empty(t, srv.Requests())
}

func TestClient_QueryChanges_NoQuery(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/", http.StatusOK, []models.ChangeInfo{})

	results, err := client.QueryChanges(context.Background(), models.QueryParams{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0])

	got, _ := srv.LastRequest()
	assert.Empty(t, got.RawQuery)
}

// ── private / wip / flags ─────────────────────────────────────────────────────

// TestClient_MarkPrivate verifies that both documented success codes are
// accepted.
func TestClient_MarkPrivate(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusOK} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.Status(http.MethodPost, "/a/changes/42/private", status)

			require.NoError(t, client.MarkPrivate(context.Background(), "42", nil))

			got, _ := srv.LastRequest()
			assert.Empty(t, got.Body)
		})
	}
}

func TestClient_MarkPrivate_WithMessage(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodPost, "/a/changes/42/private", http.StatusCreated)

	require.NoError(t, client.MarkPrivate(context.Background(), "42", &models.PrivateInput{Message: "hide"}))

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"message":"hide"}`, string(got.Body))
}

func TestClient_UnmarkPrivate(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodDelete, "/a/changes/42/private", http.StatusNoContent)
	srv.Status(http.MethodPost, "/a/changes/42/private.delete", http.StatusNoContent)

	require.NoError(t, client.UnmarkPrivate(context.Background(), "42", nil))
	got, _ := srv.LastRequest()
	assert.Equal(t, http.MethodDelete, got.Method)

	require.NoError(t, client.UnmarkPrivate(context.Background(), "42", &models.PrivateInput{Message: "public"}))
	got, _ = srv.LastRequest()
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/a/changes/42/private.delete", got.Path)
}

func TestClient_SetWorkInProgress(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodPost, "/a/changes/42/wip", http.StatusOK)
	srv.Status(http.MethodPost, "/a/changes/42/ready", http.StatusOK)

	require.NoError(t, client.SetWorkInProgress(context.Background(), "42", nil))
	require.NoError(t, client.SetReadyForReview(context.Background(), "42", &models.WorkInProgressInput{Message: "ptal"}))

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"message":"ptal"}`, string(got.Body))
}

// TestClient_PutWithoutBody verifies that flag endpoints are sent as PUT.
func TestClient_PutWithoutBody(t *testing.T) {
	client, srv := newTestClient(t)
	for _, p := range []string{"ignore", "unignore", "reviewed", "unreviewed"} {
		srv.Status(http.MethodPut, "/a/changes/42/"+p, http.StatusOK)
	}

	ctx := context.Background()
	require.NoError(t, client.IgnoreChange(ctx, "42"))
	require.NoError(t, client.UnignoreChange(ctx, "42"))
	require.NoError(t, client.MarkAsReviewed(ctx, "42"))
	require.NoError(t, client.MarkAsUnreviewed(ctx, "42"))

	reqs := srv.Requests()
	require.Len(t, reqs, 4)
	for _, r := range reqs {
		assert.Equal(t, http.MethodPut, r.Method)
	}
}

func TestClient_IndexChange(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodPost, "/a/changes/42/index", http.StatusNoContent)

	require.NoError(t, client.IndexChange(context.Background(), "42"))
}

// ── submitted together / included in / pure revert ──────────────────────────

// TestClient_ChangesSubmittedTogether verifies that non visible changes are
// always requested in addition to the caller's options.
func TestClient_ChangesSubmittedTogether(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42/submitted_together", http.StatusOK, models.SubmittedTogetherInfo{
		Changes:           []models.ChangeInfo{gerrittest.Change(42, "A"), gerrittest.Change(43, "B")},
		NonVisibleChanges: 1,
	})

	info, err := client.ChangesSubmittedTogether(context.Background(), "42", models.OptLabels)
	require.NoError(t, err)
	assert.Len(t, info.Changes, 2)
	assert.Equal(t, 1, info.NonVisibleChanges)

	assert.Equal(t, []string{"NON_VISIBLE_CHANGES", "LABELS"}, lastQuery(t, srv)["o"])
}

func TestClient_GetIncludedIn(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42/in", http.StatusOK,
		")]}'\n{\"branches\":[\"master\"],\"tags\":[\"v1.0\"],\"external\":{\"mirror\":[\"main\"]}}")

	in, err := client.GetIncludedIn(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, []string{"master"}, in.Branches)
	assert.Equal(t, []string{"v1.0"}, in.Tags)
	assert.Equal(t, []string{"main"}, in.External["mirror"])
}

func TestClient_GetPureRevert(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42/pure_revert", http.StatusOK, models.PureRevertInfo{IsPureRevert: true})

	info, err := client.GetPureRevert(context.Background(), "42", "deadbeef")
	require.NoError(t, err)
	assert.True(t, info.IsPureRevert)
	assert.Equal(t, "deadbeef", lastQuery(t, srv).Get("o"))
}

// ── comments ──────────────────────────────────────────────────────────────────

// TestClient_ListChangeComments verifies that every comment of a file is
// kept.
func TestClient_ListChangeComments(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42/comments", http.StatusOK, `)]}'
{
  "gerrit-server/src/main/java/com/google/gerrit/server/project/RefControl.java": [
    {"patch_set": 1, "id": "TvcXrmjM", "line": 23, "message": "[nit] trailing whitespace", "updated": "2013-02-26 15:40:43.986000000"},
    {"patch_set": 2, "id": "TveXwFiA", "line": 49, "in_reply_to": "TfYX-Iuo", "message": "Done", "updated": "2013-02-26 15:40:45.328000000"}
  ]
}`)

	comments, err := client.ListChangeComments(context.Background(), "42")
	require.NoError(t, err)

	file := comments["gerrit-server/src/main/java/com/google/gerrit/server/project/RefControl.java"]
	require.Len(t, file, 2)
	assert.Equal(t, "TvcXrmjM", file[0].ID)
	assert.Equal(t, "TfYX-Iuo", file[1].InReplyTo)
}

// ── hashtags / messages ───────────────────────────────────────────────────────

func TestClient_SetHashtags(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodPost, "/a/changes/42/hashtags", http.StatusOK, []string{"perf", "ui"})

	tags, err := client.SetHashtags(context.Background(), "42", models.HashtagsInput{Add: []string{"ui"}, Remove: []string{"old"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"perf", "ui"}, tags)

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"add":["ui"],"remove":["old"]}`, string(got.Body))
}

func TestClient_DeleteChangeMessage(t *testing.T) {
	client, srv := newTestClient(t)
	deleted := models.ChangeMessageInfo{ID: "af2f", Message: "Change message removed by: Administrator"}
	srv.JSON(http.MethodDelete, "/a/changes/42/messages/af2f", http.StatusOK, deleted)
	srv.JSON(http.MethodPost, "/a/changes/42/messages/af2f/delete", http.StatusOK, deleted)

	msg, err := client.DeleteChangeMessage(context.Background(), "42", "af2f", nil)
	require.NoError(t, err)
	assert.Equal(t, "af2f", msg.ID)

	_, err = client.DeleteChangeMessage(context.Background(), "42", "af2f", &models.DeleteChangeMessageInput{Reason: "spam"})
	require.NoError(t, err)

	got, _ := srv.LastRequest()
	assert.Equal(t, http.MethodPost, got.Method)
	assert.JSONEq(t, `{"reason":"spam"}`, string(got.Body))
}
