package models

// RevisionInfo contains information about a patch set.
// This describes Gerrit JSON data.
type RevisionInfo struct {
	// The change kind.
	Kind ChangeKind `json:"kind,omitempty"`
	// The patch set number, or "edit" if the patch set is an edit.
	Number int `json:"_number"`
	// The timestamp of when the patch set was created.
	Created Timestamp `json:"created"`
	// The uploader of the patch set.
	Uploader AccountInfo `json:"uploader"`
	// The Git reference for the patch set.
	Ref string `json:"ref"`
	// Information about how to fetch this patch set. The fetch information
	// is provided as a map that maps the protocol name ("git", "http", "ssh")
	// to [FetchInfo] entities.
	Fetch map[string]FetchInfo `json:"fetch"`
	// The commit of the patch set.
	Commit *CommitInfo `json:"commit,omitempty"`
	// The files of the patch set as a map that maps the file names to
	// [FileInfo] entities.
	Files map[string]FileInfo `json:"files,omitempty"`
	// Actions the caller might be able to perform on this revision.
	Actions map[string]ActionInfo `json:"actions,omitempty"`
	// Indicates whether the caller is authenticated and has commented on
	// the current revision.
	Reviewed *bool `json:"reviewed,omitempty"`
	// If the COMMIT_FOOTERS option is requested and this is the current
	// patch set, contains the full commit message with Gerrit-specific
	// commit footers.
	CommitWithFooters string `json:"commit_with_footers,omitempty"`
	// If the PUSH_CERTIFICATES option is requested, contains the push
	// certificate provided by the user when uploading this patch set.
	PushCertificate *PushCertificateInfo `json:"push_certificate,omitempty"`
	// The description of this patch set.
	Description string `json:"description,omitempty"`
}

// CommitInfo contains information about a commit.
// This describes Gerrit JSON data.
type CommitInfo struct {
	// The commit ID. Not set if included in a [RevisionInfo] entity that is
	// contained in a map which has the commit ID as key.
	Commit    string         `json:"commit,omitempty"`
	Parents   []CommitInfo   `json:"parents,omitempty"`
	Author    *GitPersonInfo `json:"author,omitempty"`
	Committer *GitPersonInfo `json:"committer,omitempty"`
	Subject   string         `json:"subject"`
	Message   string         `json:"message,omitempty"`
	WebLinks  []WebLinkInfo  `json:"web_links,omitempty"`
}

// GitPersonInfo contains information about the author/committer of a commit.
type GitPersonInfo struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  Timestamp `json:"date"`
	// The timezone offset from UTC of when the action took place.
	TZ int `json:"tz"`
}

type FetchInfo struct {
	URL      string            `json:"url"`
	Ref      string            `json:"ref"`
	Commands map[string]string `json:"commands,omitempty"`
}

// FileInfo contains information about a file in a patch set.
// This describes Gerrit JSON data.
type FileInfo struct {
	// The status of the file. Not set if the file was modified.
	Status FileStatus `json:"status,omitempty"`
	// Whether the file is binary.
	Binary bool `json:"binary,omitempty"`
	// The old file path. Only set if the file was renamed or copied.
	OldPath string `json:"old_path,omitempty"`
	// Number of inserted lines. Not set for binary files or if no lines
	// were inserted.
	LinesInserted int `json:"lines_inserted,omitempty"`
	// Number of deleted lines. Not set for binary files or if no lines
	// were deleted.
	LinesDeleted int `json:"lines_deleted,omitempty"`
	// Number of bytes by which the file size increased/decreased.
	SizeDelta int64 `json:"size_delta"`
	// File size in bytes.
	Size int64 `json:"size,omitempty"`
}

// FileStatusOrDefault returns the status, treating an absent one as modified.
func (f FileInfo) FileStatusOrDefault() FileStatus {
	if f.Status == "" {
		return FileStatusModified
	}
	return f.Status
}

type PushCertificateInfo struct {
	Certificate string     `json:"certificate"`
	Key         GpgKeyInfo `json:"key"`
}

// EditInfo contains information about a change edit.
// This describes Gerrit JSON data.
type EditInfo struct {
	Commit             CommitInfo           `json:"commit"`
	BasePatchSetNumber int                  `json:"base_patch_set_number"`
	BaseRevision       string               `json:"base_revision"`
	Ref                string               `json:"ref"`
	Fetch              map[string]FetchInfo `json:"fetch,omitempty"`
	Files              map[string]FileInfo  `json:"files,omitempty"`
}

type EditFileInfo struct {
	WebLinks []WebLinkInfo `json:"web_links,omitempty"`
}

// DiffInfo contains information about the diff of a file in a revision.
// This describes Gerrit JSON data.
type DiffInfo struct {
	MetaA           *DiffFileMetaInfo `json:"meta_a,omitempty"`
	MetaB           *DiffFileMetaInfo `json:"meta_b,omitempty"`
	ChangeType      ChangeType        `json:"change_type"`
	IntralineStatus IntralineStatus   `json:"intraline_status,omitempty"`
	DiffHeader      []string          `json:"diff_header"`
	Content         []DiffContent     `json:"content"`
	WebLinks        []DiffWebLinkInfo `json:"web_links,omitempty"`
	Binary          bool              `json:"binary,omitempty"`
}

// DiffContent contains the content differences in a file.
type DiffContent struct {
	// Content only in the file on side A (deleted in B).
	A []string `json:"a,omitempty"`
	// Content only in the file on side B (added in B).
	B []string `json:"b,omitempty"`
	// Content in the file on both sides (unchanged).
	AB []string `json:"ab,omitempty"`
	// Text sections deleted from side A as a [DiffIntralineInfo] entity.
	EditA DiffIntralineInfo `json:"edit_a,omitempty"`
	// Text sections inserted in side B as a [DiffIntralineInfo] entity.
	EditB DiffIntralineInfo `json:"edit_b,omitempty"`
	// Indicates whether this entry was introduced by a rebase.
	DueToRebase bool `json:"due_to_rebase,omitempty"`
	// Count of lines skipped on both sides when the file is too large.
	Skip int `json:"skip,omitempty"`
	// Set to true if the region is common according to the requested
	// ignore-whitespace parameter, but a and b contain differing amounts
	// of whitespace.
	Common bool `json:"common,omitempty"`
}

// DiffIntralineInfo is a list of [skip length, mark length] pairs.
type DiffIntralineInfo [][2]int

type DiffFileMetaInfo struct {
	Name        string        `json:"name"`
	ContentType string        `json:"content_type"`
	Lines       int           `json:"lines"`
	WebLinks    []WebLinkInfo `json:"web_links,omitempty"`
}

type DiffWebLinkInfo struct {
	Name                     string `json:"name"`
	URL                      string `json:"url"`
	ImageURL                 string `json:"image_url,omitempty"`
	ShowOnSideBySideDiffView bool   `json:"show_on_side_by_side_diff_view"`
	ShowOnUnifiedDiffView    bool   `json:"show_on_unified_diff_view"`
}

// BlameInfo contains blame information for a region of a file.
type BlameInfo struct {
	Author    string      `json:"author"`
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	CommitMsg string      `json:"commit_msg"`
	Ranges    []RangeInfo `json:"ranges"`
}

type RangeInfo struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
