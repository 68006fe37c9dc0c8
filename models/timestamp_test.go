package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTimestamp_UnmarshalGerritLayout verifies that the nanosecond layout
// Gerrit sends is parsed as UTC.
func TestTimestamp_UnmarshalGerritLayout(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2013-02-01 09:59:32.126000000"`), &ts))

	want := time.Date(2013, time.February, 1, 9, 59, 32, 126000000, time.UTC)
	assert.True(t, want.Equal(ts.Time))
	assert.Equal(t, time.UTC, ts.Location())
}

func TestTimestamp_MarshalUsesGerritLayout(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := NewTimestamp(time.Date(2020, time.May, 4, 12, 0, 1, 5, loc))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2020-05-04 10:00:01.000000005"`, string(b))
}

func TestTimestamp_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	b, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestTimestamp_InvalidInput(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`"2013-02-01T09:59:32Z"`), &ts))
}

// TestChangeInfo_DecodesRenamedFields verifies the underscore-prefixed and
// otherwise renamed fields Gerrit uses.
func TestChangeInfo_DecodesRenamedFields(t *testing.T) {
	const body = `{
		"id": "demo~master~I8473b95934b5732ac55d26311a706c9c2bde9940",
		"project": "demo",
		"branch": "master",
		"change_id": "I8473b95934b5732ac55d26311a706c9c2bde9940",
		"subject": "Implementing Feature X",
		"status": "NEW",
		"created": "2013-02-01 09:59:32.126000000",
		"updated": "2013-02-21 11:16:36.775000000",
		"mergeable": true,
		"insertions": 34,
		"deletions": 101,
		"_number": 3965,
		"_more_changes": true,
		"owner": {"_account_id": 1000096, "name": "John Doe"},
		"reviewers": {"CC": [{"_account_id": 1000097}]},
		"requirements": [{"status": "OK", "fallbackText": "Code-Review", "type": "code-review"}],
		"revisions": {
			"184ebe53805e102605d11f6b143486d15c23a09c": {
				"kind": "REWORK",
				"_number": 1,
				"ref": "refs/changes/65/3965/1",
				"created": "2013-02-01 09:59:32.126000000",
				"uploader": {"_account_id": 1000096},
				"fetch": {"http": {"url": "http://gerrit/demo", "ref": "refs/changes/65/3965/1"}},
				"files": {"README": {"lines_inserted": 2, "size_delta": 10, "size": 100}}
			}
		}
	}`

	var change ChangeInfo
	require.NoError(t, json.Unmarshal([]byte(body), &change))

	assert.Equal(t, 3965, change.Number)
	assert.True(t, change.MoreChanges)
	assert.Equal(t, ChangeStatusNew, change.Status)
	require.NotNil(t, change.Mergeable)
	assert.True(t, *change.Mergeable)
	assert.Equal(t, 1000096, change.Owner.AccountID)
	require.Len(t, change.Reviewers[ReviewerStateCC], 1)
	assert.Equal(t, "Code-Review", change.Requirements[0].FallbackText)
	assert.Equal(t, "code-review", change.Requirements[0].Type)

	rev := change.Revisions["184ebe53805e102605d11f6b143486d15c23a09c"]
	assert.Equal(t, "refs/changes/65/3965/1", rev.Ref)
	assert.Equal(t, ChangeKindRework, rev.Kind)
	assert.Equal(t, FileStatusModified, rev.Files["README"].FileStatusOrDefault())
}

// TestApprovalInfo_FlattensAccount verifies that account fields sit next to
// the approval fields on the wire.
func TestApprovalInfo_FlattensAccount(t *testing.T) {
	var approval ApprovalInfo
	require.NoError(t, json.Unmarshal([]byte(`{"_account_id": 7, "name": "Jane", "value": 2}`), &approval))

	assert.Equal(t, 7, approval.AccountID)
	assert.Equal(t, "Jane", approval.Name)
	require.NotNil(t, approval.Value)
	assert.Equal(t, 2, *approval.Value)
}

func TestAbandonInput_OmitsEmptyFields(t *testing.T) {
	b, err := json.Marshal(AbandonInput{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = json.Marshal(AbandonInput{Message: "obsolete", Notify: NotifyNone})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message": "obsolete", "notify": "NONE"}`, string(b))
}
