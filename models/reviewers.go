package models

// ReviewerInfo contains information about a reviewer and its votes on a change.
// This describes Gerrit JSON data.
type ReviewerInfo struct {
	AccountInfo
	// The approvals of the reviewer as a map that maps the label names to
	// the approval values ("-2", "-1", "0", "+1", "+2").
	Approvals map[string]string `json:"approvals,omitempty"`
}

// ReviewerInput contains information for adding a reviewer to a change.
type ReviewerInput struct {
	// The ID of one account that should be added as reviewer or the ID of
	// one group for which all members should be added as reviewers.
	Reviewer string `json:"reviewer"`
	// Add reviewer in this state. Possible reviewer states are REVIEWER and
	// CC. If not given, defaults to REVIEWER.
	State ReviewerState `json:"state,omitempty"`
	// Whether adding the reviewer is confirmed. The Gerrit server may be
	// configured to require a confirmation when adding a group as reviewer
	// that has many members.
	Confirmed     *bool                        `json:"confirmed,omitempty"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

// AddReviewerResult describes the result of adding a reviewer to a change.
type AddReviewerResult struct {
	// Value of the reviewer field from [ReviewerInput] set while adding
	// the reviewer.
	Input     string         `json:"input"`
	Reviewers []ReviewerInfo `json:"reviewers,omitempty"`
	CCs       []ReviewerInfo `json:"ccs,omitempty"`
	// Error message explaining why the reviewer could not be added.
	Error string `json:"error,omitempty"`
	// Whether adding the reviewer requires confirmation.
	Confirm bool `json:"confirm,omitempty"`
}

type DeleteReviewerInput struct {
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

type DeleteVoteInput struct {
	Label         string                       `json:"label,omitempty"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

// SuggestedReviewerInfo contains information about a reviewer that can be
// added to a change (an account or a group).
type SuggestedReviewerInfo struct {
	Account *AccountInfo   `json:"account,omitempty"`
	Group   *GroupBaseInfo `json:"group,omitempty"`
	// The total number of accounts in the suggestion. This is 1 if account
	// is present.
	Count   int   `json:"count"`
	Confirm *bool `json:"confirm,omitempty"`
}

type ReviewInfo struct {
	Labels map[string]int `json:"labels"`
}

// ReviewInput contains information for adding a review to a revision.
// This describes Gerrit JSON data.
type ReviewInput struct {
	Message               string                         `json:"message,omitempty"`
	Tag                   string                         `json:"tag,omitempty"`
	Labels                map[string]int                 `json:"labels,omitempty"`
	Comments              map[string][]CommentInput      `json:"comments,omitempty"`
	RobotComments         map[string][]RobotCommentInput `json:"robot_comments,omitempty"`
	Drafts                DraftHandling                  `json:"drafts,omitempty"`
	Notify                NotifyHandling                 `json:"notify,omitempty"`
	NotifyDetails         map[RecipientType]NotifyInfo   `json:"notify_details,omitempty"`
	OmitDuplicateComments *bool                          `json:"omit_duplicate_comments,omitempty"`
	OnBehalfOf            string                         `json:"on_behalf_of,omitempty"`
	Reviewers             []ReviewerInput                `json:"reviewers,omitempty"`
	Ready                 *bool                          `json:"ready,omitempty"`
	WorkInProgress        *bool                          `json:"work_in_progress,omitempty"`
}
