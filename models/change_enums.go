// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChangeStatus is the lifecycle state of a change.
type ChangeStatus string

const (
	ChangeStatusNew       ChangeStatus = "NEW"
	ChangeStatusMerged    ChangeStatus = "MERGED"
	ChangeStatusAbandoned ChangeStatus = "ABANDONED"
	ChangeStatusDraft     ChangeStatus = "DRAFT"
)

// ChangeKind describes how a patch set differs from its predecessor.
type ChangeKind string

const (
	ChangeKindRework                 ChangeKind = "REWORK"
	ChangeKindTrivialRebase          ChangeKind = "TRIVIAL_REBASE"
	ChangeKindMergeFirstParentUpdate ChangeKind = "MERGE_FIRST_PARENT_UPDATE"
	ChangeKindNoCodeChange           ChangeKind = "NO_CODE_CHANGE"
	ChangeKindNoChange               ChangeKind = "NO_CHANGE"
)

// ChangeType is the type of change made to a file in a diff.
type ChangeType string

const (
	ChangeTypeAdded    ChangeType = "ADDED"
	ChangeTypeModified ChangeType = "MODIFIED"
	ChangeTypeDeleted  ChangeType = "DELETED"
	ChangeTypeRenamed  ChangeType = "RENAMED"
	ChangeTypeCopied   ChangeType = "COPIED"
	ChangeTypeRewrite  ChangeType = "REWRITE"
)

// CommentSide tells on which side of a diff a comment was placed.
type CommentSide string

const (
	CommentSideRevision CommentSide = "REVISION"
	CommentSideParent   CommentSide = "PARENT"
)

// DraftHandling controls what happens to draft comments when a review is posted.
type DraftHandling string

const (
	DraftHandlingPublish             DraftHandling = "PUBLISH"
	DraftHandlingPublishAllRevisions DraftHandling = "PUBLISH_ALL_REVISIONS"
	DraftHandlingKeep                DraftHandling = "KEEP"
)

// FileStatus is the single-letter status of a file in a revision.
// An absent status means [FileStatusModified].
type FileStatus string

const (
	FileStatusModified  FileStatus = "M"
	FileStatusAdded     FileStatus = "A"
	FileStatusDeleted   FileStatus = "D"
	FileStatusRenamed   FileStatus = "R"
	FileStatusCopied    FileStatus = "C"
	FileStatusRewritten FileStatus = "W"
)

// HTTPMethod is the method an action is invoked with.
type HTTPMethod string

const (
	HTTPMethodPost   HTTPMethod = "POST"
	HTTPMethodPut    HTTPMethod = "PUT"
	HTTPMethodDelete HTTPMethod = "DELETE"
)

type IntralineStatus string

const (
	IntralineStatusOK      IntralineStatus = "OK"
	IntralineStatusError   IntralineStatus = "ERROR"
	IntralineStatusTimeout IntralineStatus = "TIMEOUT"
)

// MergeStrategy names a JGit merge strategy. Values are kebab-case.
type MergeStrategy string

const (
	MergeStrategyRecursive          MergeStrategy = "recursive"
	MergeStrategyResolve            MergeStrategy = "resolve"
	MergeStrategySimpleTwoWayInCore MergeStrategy = "simple-two-way-in-core"
	MergeStrategyOurs               MergeStrategy = "ours"
	MergeStrategyTheirs             MergeStrategy = "theirs"
)

// NotifyHandling selects who gets notified by email about an update.
type NotifyHandling string

const (
	NotifyAll            NotifyHandling = "ALL"
	NotifyNone           NotifyHandling = "NONE"
	NotifyOwner          NotifyHandling = "OWNER"
	NotifyOwnerReviewers NotifyHandling = "OWNER_REVIEWERS"
)

type ProblemStatus string

const (
	ProblemStatusFixed     ProblemStatus = "FIXED"
	ProblemStatusFixFailed ProblemStatus = "FIX_FAILED"
)

// RecipientType is the key of a notify_details map.
type RecipientType string

const (
	RecipientTo  RecipientType = "TO"
	RecipientCC  RecipientType = "CC"
	RecipientBCC RecipientType = "BCC"
)

type RequirementStatus string

const (
	RequirementStatusOK        RequirementStatus = "OK"
	RequirementStatusNotReady  RequirementStatus = "NOT_READY"
	RequirementStatusRuleError RequirementStatus = "RULE_ERROR"
)

// ReviewerState is a user's relationship to the review of a change.
type ReviewerState string

const (
	ReviewerStateReviewer ReviewerState = "REVIEWER"
	ReviewerStateCC       ReviewerState = "CC"
	ReviewerStateRemoved  ReviewerState = "REMOVED"
)

type RuleFilter string

const (
	RuleFilterRun  RuleFilter = "RUN"
	RuleFilterSkip RuleFilter = "SKIP"
)

type SubmitStatus string

const (
	SubmitStatusOK        SubmitStatus = "OK"
	SubmitStatusNotReady  SubmitStatus = "NOT_READY"
	SubmitStatusClosed    SubmitStatus = "CLOSED"
	SubmitStatusRuleError SubmitStatus = "RULE_ERROR"
)

// SubmitType is the submit strategy of a project or change.
type SubmitType string

const (
	SubmitTypeInherit           SubmitType = "INHERIT"
	SubmitTypeFastForwardOnly   SubmitType = "FAST_FORWARD_ONLY"
	SubmitTypeMergeIfNecessary  SubmitType = "MERGE_IF_NECESSARY"
	SubmitTypeMergeAlways       SubmitType = "MERGE_ALWAYS"
	SubmitTypeCherryPick        SubmitType = "CHERRY_PICK"
	SubmitTypeRebaseIfNecessary SubmitType = "REBASE_IF_NECESSARY"
	SubmitTypeRebaseAlways      SubmitType = "REBASE_ALWAYS"
)

var submitTypeTitles = map[SubmitType]string{
	SubmitTypeInherit:           "Inherit",
	SubmitTypeFastForwardOnly:   "Fast-Forward only",
	SubmitTypeMergeIfNecessary:  "Merge if Necessary",
	SubmitTypeMergeAlways:       "Merge Always",
	SubmitTypeCherryPick:        "Cherry-Pick",
	SubmitTypeRebaseIfNecessary: "Rebase if Necessary",
	SubmitTypeRebaseAlways:      "Rebase Always",
}

// Title returns the name Gerrit shows for the submit type in its UI.
// Unknown values are returned unchanged.
func (s SubmitType) Title() string {
	if title, ok := submitTypeTitles[s]; ok {
		return title
	}
	return string(s)
}
