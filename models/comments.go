package models

// CommentInfo contains information about an inline comment.
// This describes Gerrit JSON data.
type CommentInfo struct {
	// The patch set number for the comment; only set in contexts where
	// comments may be returned for multiple patch sets.
	PatchSet int `json:"patch_set,omitempty"`
	// The URL encoded UUID of the comment.
	ID string `json:"id"`
	// The path of the file for which the inline comment was done. Not set
	// if returned in a map where the key is the file path.
	Path string `json:"path,omitempty"`
	// The side on which the comment was added. Absent means REVISION.
	Side CommentSide `json:"side,omitempty"`
	// The 1-based parent number. Used only for merge commits when
	// side == PARENT.
	Parent int `json:"parent,omitempty"`
	// The number of the line for which the comment was done. If range is
	// set, this equals the end line of the range. If neither line nor range
	// is set, it's a file comment.
	Line int `json:"line,omitempty"`
	// The range of the comment as a [CommentRange] entity.
	Range *CommentRange `json:"range,omitempty"`
	// The URL encoded UUID of the comment to which this comment is a reply.
	InReplyTo string `json:"in_reply_to,omitempty"`
	// The comment message.
	Message string `json:"message,omitempty"`
	// The timestamp of when this comment was written.
	Updated Timestamp `json:"updated"`
	// The author of the message. Unset for draft comments, assumed to be
	// the calling user.
	Author *AccountInfo `json:"author,omitempty"`
	// Value of the tag field from [ReviewInput] set while posting the review.
	Tag string `json:"tag,omitempty"`
	// Whether or not the comment must be addressed by the user.
	Unresolved *bool `json:"unresolved,omitempty"`
}

// CommentInput contains information for creating an inline comment.
type CommentInput struct {
	ID         string        `json:"id,omitempty"`
	Path       string        `json:"path,omitempty"`
	Side       CommentSide   `json:"side,omitempty"`
	Line       int           `json:"line,omitempty"`
	Range      *CommentRange `json:"range,omitempty"`
	InReplyTo  string        `json:"in_reply_to,omitempty"`
	Updated    *Timestamp    `json:"updated,omitempty"`
	Message    string        `json:"message,omitempty"`
	Tag        string        `json:"tag,omitempty"`
	Unresolved *bool         `json:"unresolved,omitempty"`
}

// CommentRange describes the range of an inline comment. Lines are 1-based,
// characters are 0-based.
type CommentRange struct {
	StartLine      int `json:"start_line"`
	StartCharacter int `json:"start_character"`
	EndLine        int `json:"end_line"`
	EndCharacter   int `json:"end_character"`
}

// RobotCommentInfo contains information about a robot inline comment.
// This describes Gerrit JSON data.
type RobotCommentInfo struct {
	CommentInfo
	RobotID        string              `json:"robot_id"`
	RobotRunID     string              `json:"robot_run_id"`
	URL            string              `json:"url,omitempty"`
	Properties     map[string]string   `json:"properties,omitempty"`
	FixSuggestions []FixSuggestionInfo `json:"fix_suggestions,omitempty"`
}

// RobotCommentInput contains information for creating an inline robot comment.
type RobotCommentInput struct {
	CommentInput
	RobotID        string              `json:"robot_id"`
	RobotRunID     string              `json:"robot_run_id"`
	URL            string              `json:"url,omitempty"`
	Properties     map[string]string   `json:"properties,omitempty"`
	FixSuggestions []FixSuggestionInfo `json:"fix_suggestions,omitempty"`
}

type FixSuggestionInfo struct {
	FixID        string               `json:"fix_id,omitempty"`
	Description  string               `json:"description"`
	Replacements []FixReplacementInfo `json:"replacements"`
}

type FixReplacementInfo struct {
	Path        string       `json:"path"`
	Range       CommentRange `json:"range"`
	Replacement string       `json:"replacement"`
}
