package models

// ChangeInfo contains information about a change.
// This describes Gerrit JSON data.
type ChangeInfo struct {
	// The ID of the change in the format "<project>~<branch>~<Change-Id>".
	ID string `json:"id"`
	// The name of the project.
	Project string `json:"project"`
	// The name of the target branch. The refs/heads/ prefix is omitted.
	Branch string `json:"branch"`
	// The topic to which this change belongs.
	Topic string `json:"topic,omitempty"`
	// The assignee of the change.
	Assignee *AccountInfo `json:"assignee,omitempty"`
	// List of hashtags that are set on the change.
	Hashtags []string `json:"hashtags,omitempty"`
	// The Change-Id of the change.
	ChangeID string `json:"change_id"`
	// The subject of the change (header line of the commit message).
	Subject string `json:"subject"`
	// The status of the change.
	Status ChangeStatus `json:"status"`
	// The timestamp of when the change was created.
	Created Timestamp `json:"created"`
	// The timestamp of when the change was last updated.
	Updated Timestamp `json:"updated"`
	// The timestamp of when the change was submitted.
	Submitted *Timestamp `json:"submitted,omitempty"`
	// The user who submitted the change.
	Submitter *AccountInfo `json:"submitter,omitempty"`
	// Whether the calling user has starred this change with the default label.
	Starred bool `json:"starred,omitempty"`
	// A list of star labels that are applied by the calling user to this change.
	Stars []string `json:"stars,omitempty"`
	// Whether the change was reviewed by the calling user.
	// Only set if reviewed is requested.
	Reviewed bool `json:"reviewed,omitempty"`
	// The submit type of the change. Not set for merged changes.
	SubmitType SubmitType `json:"submit_type,omitempty"`
	// Whether the change is mergeable. Not set for merged changes,
	// or if the change has not yet been tested.
	Mergeable *bool `json:"mergeable,omitempty"`
	// Whether the change has been approved by the project submit rules.
	// Only set if requested.
	Submittable *bool `json:"submittable,omitempty"`
	// Number of inserted lines.
	Insertions int `json:"insertions"`
	// Number of deleted lines.
	Deletions int `json:"deletions"`
	// Total number of inline comments across all patch sets.
	TotalCommentCount *int `json:"total_comment_count,omitempty"`
	// Number of unresolved inline comment threads across all patch sets.
	UnresolvedCommentCount *int `json:"unresolved_comment_count,omitempty"`
	// The legacy numeric ID of the change.
	Number int `json:"_number"`
	// The owner of the change.
	Owner AccountInfo `json:"owner"`
	// Actions the caller might be able to perform on this revision.
	// The information is a map of view name to [ActionInfo] entities.
	Actions map[string]ActionInfo `json:"actions,omitempty"`
	// A list of the requirements to be met before this change can be submitted.
	Requirements []Requirement `json:"requirements,omitempty"`
	// The labels of the change as a map that maps the label names to
	// [LabelInfo] entries. Only set if labels or detailed labels are requested.
	Labels map[string]LabelInfo `json:"labels,omitempty"`
	// A map of the permitted labels that maps a label name to the list of values
	// that are allowed for that label. Only set if detailed labels are requested.
	PermittedLabels map[string][]string `json:"permitted_labels,omitempty"`
	// The reviewers that can be removed by the calling user as a list of
	// [AccountInfo] entities. Only set if detailed labels are requested.
	RemovableReviewers []AccountInfo `json:"removable_reviewers,omitempty"`
	// The reviewers as a map that maps a reviewer state to a list of
	// [AccountInfo] entities.
	Reviewers map[ReviewerState][]AccountInfo `json:"reviewers,omitempty"`
	// Updates to reviewers that have been made while the change was in the
	// WIP state. Only present on WIP changes and only if there are pending
	// reviewer updates to report.
	PendingReviewers map[ReviewerState][]AccountInfo `json:"pending_reviewers,omitempty"`
	// Updates to reviewers set for the change. Only set if reviewer updates
	// are requested and if the change is NoteDb enabled.
	ReviewerUpdates []ReviewerUpdateInfo `json:"reviewer_updates,omitempty"`
	// Messages associated with the change. Only set if messages are requested.
	Messages []ChangeMessageInfo `json:"messages,omitempty"`
	// The commit ID of the current patch set of this change.
	// Only set if the current revision is requested or if all revisions are requested.
	CurrentRevision string `json:"current_revision,omitempty"`
	// All patch sets of this change as a map that maps the commit ID of the
	// patch set to a [RevisionInfo] entity.
	Revisions map[string]RevisionInfo `json:"revisions,omitempty"`
	// A list of [TrackingIdInfo] entities describing references to external
	// tracking systems. Only set if tracking ids are requested.
	TrackingIDs []TrackingIDInfo `json:"tracking_ids,omitempty"`
	// Whether the query would deliver more results if not limited.
	// Only set on the last change that is returned.
	MoreChanges bool `json:"_more_changes,omitempty"`
	// A list of [ProblemInfo] entities describing potential problems with this
	// change. Only set if check is requested.
	Problems []ProblemInfo `json:"problems,omitempty"`
	// When present, change is marked as private.
	IsPrivate bool `json:"is_private,omitempty"`
	// When present, change is marked as Work In Progress.
	WorkInProgress bool `json:"work_in_progress,omitempty"`
	// When present, change has been marked Ready at some point in time.
	HasReviewStarted bool `json:"has_review_started,omitempty"`
	// The numeric Change-Id of the change that this change reverts.
	RevertOf int `json:"revert_of,omitempty"`
	// ID of the submission of this change. Only set if the status is MERGED.
	SubmissionID string `json:"submission_id,omitempty"`
}

// ChangeInput contains information about creating a new change.
// This describes Gerrit JSON data.
type ChangeInput struct {
	Project        string                       `json:"project"`
	Branch         string                       `json:"branch"`
	Subject        string                       `json:"subject"`
	Topic          string                       `json:"topic,omitempty"`
	Status         ChangeStatus                 `json:"status,omitempty"`
	IsPrivate      *bool                        `json:"is_private,omitempty"`
	WorkInProgress *bool                        `json:"work_in_progress,omitempty"`
	BaseChange     string                       `json:"base_change,omitempty"`
	BaseCommit     string                       `json:"base_commit,omitempty"`
	NewBranch      *bool                        `json:"new_branch,omitempty"`
	Merge          *MergeInput                  `json:"merge,omitempty"`
	Author         *AccountInput                `json:"author,omitempty"`
	Notify         NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails  map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

// ChangeMessageInfo contains information about a message attached to a change.
// This describes Gerrit JSON data.
type ChangeMessageInfo struct {
	// The ID of the message.
	ID string `json:"id"`
	// Author of the message. Unset if written by the Gerrit system.
	Author *AccountInfo `json:"author,omitempty"`
	// Real author of the message. Only set if the message was posted on
	// behalf of another user.
	RealAuthor *AccountInfo `json:"real_author,omitempty"`
	// The timestamp this message was posted.
	Date Timestamp `json:"date"`
	// The text left by the user.
	Message string `json:"message"`
	// Value of the tag field from [ReviewInput] set while posting the review.
	Tag string `json:"tag,omitempty"`
	// Which patch set (if any) generated this message.
	RevisionNumber int `json:"_revision_number,omitempty"`
}

// ActionInfo describes a REST API call the client can make to manipulate
// a resource.
// This describes Gerrit JSON data.
type ActionInfo struct {
	Method  HTTPMethod `json:"method,omitempty"`
	Label   string     `json:"label,omitempty"`
	Title   string     `json:"title,omitempty"`
	Enabled bool       `json:"enabled,omitempty"`
}

// ApprovalInfo contains information about an approval from a user for
// a label on a change.
// This describes Gerrit JSON data.
type ApprovalInfo struct {
	AccountInfo
	// The vote that the user has given for the label. If present and zero,
	// the user is permitted to vote on the label. If absent, the user is
	// not permitted to vote on that label.
	Value *int `json:"value,omitempty"`
	// The VotingRangeInfo the user is authorized to vote on that label.
	PermittedVotingRange *VotingRangeInfo `json:"permitted_voting_range,omitempty"`
	// The time and date describing when the approval was made.
	Date *Timestamp `json:"date,omitempty"`
	// Value of the tag field from [ReviewInput] set while posting the review.
	Tag string `json:"tag,omitempty"`
	// If true, this vote was made after the change was submitted.
	PostSubmit bool `json:"post_submit,omitempty"`
}

type VotingRangeInfo struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// LabelInfo contains information about a label on a change, always
// corresponding to the current patch set.
// This describes Gerrit JSON data.
type LabelInfo struct {
	// Whether the label is optional. Optional means the label may be set,
	// but it's neither necessary for submission nor does it block submission.
	Optional bool `json:"optional,omitempty"`

	// Fields set by LABELS.
	Approved     *AccountInfo `json:"approved,omitempty"`
	Rejected     *AccountInfo `json:"rejected,omitempty"`
	Recommended  *AccountInfo `json:"recommended,omitempty"`
	Disliked     *AccountInfo `json:"disliked,omitempty"`
	Blocking     bool         `json:"blocking,omitempty"`
	Value        *int         `json:"value,omitempty"`
	DefaultValue *int         `json:"default_value,omitempty"`

	// Fields set by DETAILED_LABELS.
	All    []ApprovalInfo    `json:"all,omitempty"`
	Values map[string]string `json:"values,omitempty"`
}

// Requirement contains information about a requirement relative to a change.
// This describes Gerrit JSON data.
type Requirement struct {
	Status       RequirementStatus `json:"status"`
	FallbackText string            `json:"fallbackText"`
	// Alphanumerical (plus hyphens or underscores) string to identify what
	// the requirement is and why it was triggered.
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
}

// ReviewerUpdateInfo contains information about updates to a change's reviewers set.
// This describes Gerrit JSON data.
type ReviewerUpdateInfo struct {
	Updated   Timestamp     `json:"updated"`
	UpdatedBy AccountInfo   `json:"updated_by"`
	Reviewer  AccountInfo   `json:"reviewer"`
	State     ReviewerState `json:"state"`
}

// TrackingIDInfo describes a reference to an external tracking system.
// This describes Gerrit JSON data.
type TrackingIDInfo struct {
	System string `json:"system"`
	ID     string `json:"id"`
}

// ProblemInfo contains a description of a potential consistency problem
// with a change.
// This describes Gerrit JSON data.
type ProblemInfo struct {
	Message string        `json:"message"`
	Status  ProblemStatus `json:"status,omitempty"`
	Outcome string        `json:"outcome,omitempty"`
}

// NotifyInfo lists the accounts that should be notified for one
// [RecipientType].
type NotifyInfo struct {
	Accounts []string `json:"accounts,omitempty"`
}

// IncludedInInfo contains information about the branches a change was
// merged into and tags it was tagged with.
// This describes Gerrit JSON data.
type IncludedInInfo struct {
	Branches []string `json:"branches"`
	Tags     []string `json:"tags"`
	// A map that maps a name to a list of external systems that include
	// this change, e.g. a list of servers on which this change is deployed.
	External map[string][]string `json:"external,omitempty"`
}

type PureRevertInfo struct {
	IsPureRevert bool `json:"is_pure_revert"`
}

type RevertSubmissionInfo struct {
	RevertChanges []ChangeInfo `json:"revert_changes"`
}

// SubmittedTogetherInfo contains information about a collection of changes
// that would be submitted together.
// This describes Gerrit JSON data.
type SubmittedTogetherInfo struct {
	Changes []ChangeInfo `json:"changes"`
	// Number of changes that would be submitted together but the calling
	// user cannot see.
	NonVisibleChanges int `json:"non_visible_changes"`
}

type SubmitInfo struct {
	Status     ChangeStatus `json:"status"`
	OnBehalfOf string       `json:"on_behalf_of,omitempty"`
}

// SubmitRecord describes the result of evaluating the submit rules of a change.
// This describes Gerrit JSON data.
type SubmitRecord struct {
	Status       SubmitStatus           `json:"status"`
	OK           map[string]AccountInfo `json:"ok,omitempty"`
	Reject       map[string]AccountInfo `json:"reject,omitempty"`
	Need         map[string]AccountInfo `json:"need,omitempty"`
	Impossible   map[string]struct{}    `json:"impossible,omitempty"`
	ErrorMessage string                 `json:"error_message,omitempty"`
}

// MergeableInfo contains information about the mergeability of a change.
// This describes Gerrit JSON data.
type MergeableInfo struct {
	SubmitType    SubmitType    `json:"submit_type"`
	Strategy      MergeStrategy `json:"strategy,omitempty"`
	Mergeable     bool          `json:"mergeable"`
	CommitMerged  *bool         `json:"commit_merged,omitempty"`
	ContentMerged *bool         `json:"content_merged,omitempty"`
	Conflicts     []string      `json:"conflicts,omitempty"`
	MergeableInto []string      `json:"mergeable_into,omitempty"`
}

// RelatedChangeAndCommitInfo contains information about a related change
// and commit.
// This describes Gerrit JSON data.
type RelatedChangeAndCommitInfo struct {
	Project               string       `json:"project"`
	ChangeID              string       `json:"change_id,omitempty"`
	Commit                CommitInfo   `json:"commit"`
	ChangeNumber          int          `json:"_change_number,omitempty"`
	RevisionNumber        int          `json:"_revision_number,omitempty"`
	CurrentRevisionNumber int          `json:"_current_revision_number,omitempty"`
	Status                ChangeStatus `json:"status,omitempty"`
}

type RelatedChangesInfo struct {
	Changes []RelatedChangeAndCommitInfo `json:"changes"`
}

type WebLinkInfo struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`
}
