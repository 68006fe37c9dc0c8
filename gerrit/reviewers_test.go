package gerrit_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natanaeljr/gerlib/gerrit"
	"github.com/natanaeljr/gerlib/models"
)

const reviewerJSON = `{
  "_account_id": 1000096,
  "name": "John Doe",
  "email": "john.doe@example.com",
  "approvals": {"Verified": "+1", "Code-Review": "+2"}
}`

func TestClient_ListReviewers(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42/reviewers/", http.StatusOK, ")]}'\n["+reviewerJSON+"]")

	reviewers, err := client.ListReviewers(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	assert.Equal(t, 1000096, reviewers[0].AccountID)
	assert.Equal(t, "+2", reviewers[0].Approvals["Code-Review"])
}

// TestClient_GetReviewer verifies that both the list and the object form of
// the answer are accepted.
func TestClient_GetReviewer(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "list", body: ")]}'\n[" + reviewerJSON + "]"},
		{name: "object", body: ")]}'\n" + reviewerJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.Raw(http.MethodGet, "/a/changes/42/reviewers/{account}", http.StatusOK, tt.body)

			reviewer, err := client.GetReviewer(context.Background(), "42", "john.doe@example.com")
			require.NoError(t, err)
			assert.Equal(t, "John Doe", reviewer.Name)
			assert.Equal(t, "+1", reviewer.Approvals["Verified"])
		})
	}
}

func TestClient_GetReviewer_EmptyList(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodGet, "/a/changes/42/reviewers/{account}", http.StatusOK, ")]}'\n[]")

	_, err := client.GetReviewer(context.Background(), "42", "1000096")
	require.ErrorIs(t, err, gerrit.ErrInvalidJSONResponse)
}

// TestClient_SuggestReviewers verifies the query parameters derived from the
// options.
func TestClient_SuggestReviewers(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42/suggest_reviewers", http.StatusOK, []models.SuggestedReviewerInfo{
		{Account: &models.AccountInfo{AccountID: 1000097, Name: "Jane Roe"}, Count: 1},
		{Group: &models.GroupBaseInfo{ID: "4fd581c0657268f2bdcc26699fbf9ddb76e3a279", Name: "Joiner"}, Count: 5},
	})

	suggestions, err := client.SuggestReviewers(context.Background(), "42", "J", gerrit.SuggestReviewersOptions{
		Limit:         5,
		ExcludeGroups: true,
		CC:            true,
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Jane Roe", suggestions[0].Account.Name)
	assert.Equal(t, "Joiner", suggestions[1].Group.Name)

	q := lastQuery(t, srv)
	assert.Equal(t, "J", q.Get("q"))
	assert.Equal(t, "5", q.Get("n"))
	assert.Equal(t, "true", q.Get("exclude-groups"))
	assert.Equal(t, "CC", q.Get("reviewer-state"))
}

func TestClient_SuggestReviewers_Defaults(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42/suggest_reviewers", http.StatusOK, []models.SuggestedReviewerInfo{})

	_, err := client.SuggestReviewers(context.Background(), "42", "jo", gerrit.SuggestReviewersOptions{})
	require.NoError(t, err)

	q := lastQuery(t, srv)
	assert.Equal(t, "jo", q.Get("q"))
	assert.False(t, q.Has("n"))
	assert.False(t, q.Has("exclude-groups"))
	assert.False(t, q.Has("reviewer-state"))
}

func TestClient_AddReviewer(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodPost, "/a/changes/42/reviewers/", http.StatusOK,
		")]}'\n{\"input\":\"john.doe@example.com\",\"reviewers\":["+reviewerJSON+"]}")

	res, err := client.AddReviewer(context.Background(), "42", models.ReviewerInput{
		Reviewer: "john.doe@example.com",
		State:    models.ReviewerStateReviewer,
	})
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", res.Input)
	require.Len(t, res.Reviewers, 1)

	got, _ := srv.LastRequest()
	assert.JSONEq(t, `{"reviewer":"john.doe@example.com","state":"REVIEWER"}`, string(got.Body))
}

func TestClient_DeleteReviewer(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Status(http.MethodDelete, "/a/changes/42/reviewers/{account}", http.StatusNoContent)
	srv.Status(http.MethodPost, "/a/changes/42/reviewers/{account}/delete", http.StatusNoContent)

	require.NoError(t, client.DeleteReviewer(context.Background(), "42", "1000096", nil))

	require.NoError(t, client.DeleteReviewer(context.Background(), "42", "1000096", &models.DeleteReviewerInput{Notify: models.NotifyNone}))
	got, _ := srv.LastRequest()
	assert.Equal(t, "/a/changes/42/reviewers/1000096/delete", got.Path)
	assert.JSONEq(t, `{"notify":"NONE"}`, string(got.Body))
}

func TestClient_ListVotes(t *testing.T) {
	client, srv := newTestClient(t)
	srv.JSON(http.MethodGet, "/a/changes/42/reviewers/{account}/votes/", http.StatusOK, map[string]int{"Code-Review": 2, "Verified": -1})

	votes, err := client.ListVotes(context.Background(), "42", "john")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Code-Review": 2, "Verified": -1}, votes)
}

func TestClient_DeleteVote_Forbidden(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Raw(http.MethodDelete, "/a/changes/42/reviewers/{account}/votes/{label}", http.StatusForbidden, "delete vote not permitted")

	err := client.DeleteVote(context.Background(), "42", "john", "Code-Review", nil)
	require.ErrorIs(t, err, gerrit.ErrForbidden)

	got, _ := srv.LastRequest()
	assert.Equal(t, "/a/changes/42/reviewers/john/votes/Code-Review", got.Path)
}
