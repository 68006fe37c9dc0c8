// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// AdditionalOpt asks Gerrit to fill in optional parts of a [ChangeInfo].
// It is sent as a repeated "o" query parameter.
type AdditionalOpt string

const (
	OptLabels           AdditionalOpt = "LABELS"
	OptDetailedLabels   AdditionalOpt = "DETAILED_LABELS"
	OptCurrentRevision  AdditionalOpt = "CURRENT_REVISION"
	OptAllRevisions     AdditionalOpt = "ALL_REVISIONS"
	OptDownloadCommands AdditionalOpt = "DOWNLOAD_COMMANDS"
	OptCurrentCommit    AdditionalOpt = "CURRENT_COMMIT"
	OptAllCommits       AdditionalOpt = "ALL_COMMITS"
	OptCurrentFiles     AdditionalOpt = "CURRENT_FILES"
	OptAllFiles         AdditionalOpt = "ALL_FILES"
	OptDetailedAccounts AdditionalOpt = "DETAILED_ACCOUNTS"
	OptReviewerUpdates  AdditionalOpt = "REVIEWER_UPDATES"
	OptMessages         AdditionalOpt = "MESSAGES"
	OptCurrentActions   AdditionalOpt = "CURRENT_ACTIONS"
	OptChangeActions    AdditionalOpt = "CHANGE_ACTIONS"
	OptReviewed         AdditionalOpt = "REVIEWED"
	OptSkipDiffstat     AdditionalOpt = "SKIP_DIFFSTAT"
	OptSubmittable      AdditionalOpt = "SUBMITTABLE"
	OptWebLinks         AdditionalOpt = "WEB_LINKS"
	OptCheck            AdditionalOpt = "CHECK"
	OptCommitFooters    AdditionalOpt = "COMMIT_FOOTERS"
	OptPushCertificates AdditionalOpt = "PUSH_CERTIFICATES"
	OptTrackingIDs      AdditionalOpt = "TRACKING_IDS"
	// OptNonVisibleChanges is only understood by the submitted_together endpoint.
	OptNonVisibleChanges AdditionalOpt = "NON_VISIBLE_CHANGES"
)

var additionalOpts = map[string]AdditionalOpt{}

func init() {
	for _, o := range []AdditionalOpt{
		OptLabels, OptDetailedLabels, OptCurrentRevision, OptAllRevisions,
		OptDownloadCommands, OptCurrentCommit, OptAllCommits, OptCurrentFiles,
		OptAllFiles, OptDetailedAccounts, OptReviewerUpdates, OptMessages,
		OptCurrentActions, OptChangeActions, OptReviewed, OptSkipDiffstat,
		OptSubmittable, OptWebLinks, OptCheck, OptCommitFooters,
		OptPushCertificates, OptTrackingIDs, OptNonVisibleChanges,
	} {
		additionalOpts[string(o)] = o
	}
}

// ParseAdditionalOpt resolves a case-insensitive option name such as
// "current_revision".
func ParseAdditionalOpt(s string) (AdditionalOpt, error) {
	o, ok := additionalOpts[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown change option %q", s)
	}
	return o, nil
}

// Is is the argument of the "is:" search operator.
type Is string

const (
	IsAssigned    Is = "assigned"
	IsUnassigned  Is = "unassigned"
	IsStarred     Is = "starred"
	IsWatched     Is = "watched"
	IsReviewed    Is = "reviewed"
	IsOwner       Is = "owner"
	IsReviewer    Is = "reviewer"
	IsCC          Is = "cc"
	IsIgnored     Is = "ignored"
	IsNew         Is = "new"
	IsOpen        Is = "open"
	IsPending     Is = "pending"
	IsDraft       Is = "draft"
	IsClosed      Is = "closed"
	IsMerged      Is = "merged"
	IsAbandoned   Is = "abandoned"
	IsSubmittable Is = "submittable"
	IsMergeable   Is = "mergeable"
	IsPrivate     Is = "private"
	IsWIP         Is = "wip"
)

// QueryOperator is one term of a cooked search query.
type QueryOperator string

const (
	BoolNot    QueryOperator = "NOT"
	BoolAnd    QueryOperator = "AND"
	BoolOr     QueryOperator = "OR"
	GroupBegin QueryOperator = "("
	GroupEnd   QueryOperator = ")"
)

func SearchIs(v Is) QueryOperator { return QueryOperator("is:" + string(v)) }

func SearchOwner(owner string) QueryOperator { return QueryOperator("owner:" + owner) }

func SearchReviewer(reviewer string) QueryOperator {
	return QueryOperator("reviewer:" + reviewer)
}

func SearchLimit(n int) QueryOperator { return QueryOperator("limit:" + strconv.Itoa(n)) }

// QueryStr is a single search query. It is either raw text passed through
// as is, or a list of operators joined with spaces.
type QueryStr struct {
	raw       string
	operators []QueryOperator
	cooked    bool
}

// RawQuery wraps a query string written in Gerrit's search syntax.
func RawQuery(q string) QueryStr {
	return QueryStr{raw: q}
}

// CookedQuery builds a query from operators, e.g.
// CookedQuery(SearchIs(IsOpen), BoolAnd, SearchOwner("self")).
func CookedQuery(ops ...QueryOperator) QueryStr {
	return QueryStr{operators: ops, cooked: true}
}

// String renders the query the way it is sent in the "q" parameter.
func (q QueryStr) String() string {
	if !q.cooked {
		return q.raw
	}
	parts := make([]string, len(q.operators))
	for i, op := range q.operators {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}

// SearchQueries is the repeated "q" parameter of a change query.
type SearchQueries []QueryStr

// EncodeValues adds one "q" value per query. Blank queries are rejected
// because Gerrit would answer them with a different result shape.
func (s SearchQueries) EncodeValues(key string, v *url.Values) error {
	for i, q := range s {
		str := q.String()
		if strings.TrimSpace(str) == "" {
			return fmt.Errorf("search query #%d is empty", i+1)
		}
		v.Add(key, str)
	}
	return nil
}

// QueryParams are the parameters of a change query.
type QueryParams struct {
	// Search holds one or more queries. With more than one query the
	// response is a list of result lists, one per query.
	Search SearchQueries `url:"q,omitempty"`
	// Options adds optional fields to each returned change.
	Options []AdditionalOpt `url:"o,omitempty"`
	// Limit caps the number of returned changes.
	Limit *int `url:"n,omitempty"`
	// Start skips that many changes from the beginning of the result.
	Start *int `url:"S,omitempty"`
}
