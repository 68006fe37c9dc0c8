// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request bodies accepted by the change endpoints. Every type here
// describes Gerrit JSON data; empty optional fields are omitted on the wire.

// AbandonInput is the body of an abandon request.
type AbandonInput struct {
	// Message to be added as review comment to the change when abandoning it.
	Message       string                       `json:"message,omitempty"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

type AssigneeInput struct {
	// The ID of one account that should be added as assignee.
	Assignee string `json:"assignee"`
}

type ChangeEditInput struct {
	RestorePath string `json:"restore_path,omitempty"`
	OldPath     string `json:"old_path,omitempty"`
	NewPath     string `json:"new_path,omitempty"`
}

type ChangeEditMessageInput struct {
	Message string `json:"message"`
}

// CherryPickInput contains information for cherry-picking a change to a
// new branch.
type CherryPickInput struct {
	Message        string                       `json:"message,omitempty"`
	Destination    string                       `json:"destination"`
	Base           string                       `json:"base,omitempty"`
	Parent         int                          `json:"parent,omitempty"`
	Notify         NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails  map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
	KeepReviewers  *bool                        `json:"keep_reviewers,omitempty"`
	AllowConflicts *bool                        `json:"allow_conflicts,omitempty"`
}

// CommitMessageInput contains information for changing the commit message
// of a change.
type CommitMessageInput struct {
	Message       string                       `json:"message"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

type DeleteChangeMessageInput struct {
	Reason string `json:"reason,omitempty"`
}

type DeleteCommentInput struct {
	Reason string `json:"reason,omitempty"`
}

type DescriptionInput struct {
	Description string `json:"description"`
}

// FixInput controls how the consistency check of a change repairs it.
type FixInput struct {
	// If true, delete patch sets from the database if they refer to missing
	// commit options.
	DeletePatchSetIfCommitMissing bool `json:"delete_patch_set_if_commit_missing"`
	// If set, check that the change is merged into the destination branch
	// as this exact SHA-1. If not, insert a new patch set referring to this
	// commit.
	ExpectMergedAs string `json:"expect_merged_as,omitempty"`
}

type HashtagsInput struct {
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`
}

// MergeInput contains information about the merge.
type MergeInput struct {
	// The source to merge from, e.g. a complete or abbreviated commit SHA-1,
	// a complete reference name, a short reference name under refs/heads,
	// refs/tags, or refs/remotes namespace, etc.
	Source string `json:"source"`
	// A branch from which source is reachable.
	SourceBranch   string        `json:"source_branch,omitempty"`
	Strategy       MergeStrategy `json:"strategy,omitempty"`
	AllowConflicts *bool         `json:"allow_conflicts,omitempty"`
}

// MergePatchSetInput contains information for creating a new patch set
// that merges a source into the change.
type MergePatchSetInput struct {
	Subject       string     `json:"subject,omitempty"`
	InheritParent *bool      `json:"inherit_parent,omitempty"`
	BaseChange    string     `json:"base_change,omitempty"`
	Merge         MergeInput `json:"merge"`
}

type MoveInput struct {
	DestinationBranch string `json:"destination_branch"`
	Message           string `json:"message,omitempty"`
}

type PrivateInput struct {
	Message string `json:"message,omitempty"`
}

type PublishChangeEditInput struct {
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

type RebaseInput struct {
	// The new parent revision. Empty rebases on top of the target branch.
	Base string `json:"base,omitempty"`
}

type RestoreInput struct {
	Message string `json:"message,omitempty"`
}

// RevertInput contains information for reverting a change or a submission.
type RevertInput struct {
	Message       string                       `json:"message,omitempty"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
	// Name of the topic for the revert change. If not set, the default for
	// revert submission is the original topic with a "revert-" prefix.
	Topic string `json:"topic,omitempty"`
}

type RuleInput struct {
	Rule    string     `json:"rule"`
	Filters RuleFilter `json:"filters,omitempty"`
}

// SubmitInput contains information for submitting a change.
type SubmitInput struct {
	// If set, submit the change on behalf of the given user.
	OnBehalfOf    string                       `json:"on_behalf_of,omitempty"`
	Notify        NotifyHandling               `json:"notify,omitempty"`
	NotifyDetails map[RecipientType]NotifyInfo `json:"notify_details,omitempty"`
}

type TopicInput struct {
	Topic string `json:"topic"`
}

type WorkInProgressInput struct {
	Message string `json:"message,omitempty"`
}
