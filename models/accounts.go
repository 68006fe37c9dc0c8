package models

// AccountInfo contains information about an account.
// This describes Gerrit JSON data.
type AccountInfo struct {
	// The numeric ID of the account.
	AccountID int `json:"_account_id"`
	// The full name of the user.
	Name string `json:"name,omitempty"`
	// The display name of the user.
	DisplayName string `json:"display_name,omitempty"`
	// The email address the user prefers to be contacted through.
	Email string `json:"email,omitempty"`
	// A list of the secondary email addresses of the user.
	SecondaryEmails []string `json:"secondary_emails,omitempty"`
	// The username of the user.
	Username string `json:"username,omitempty"`
	// List of [AvatarInfo] entities that provide information about
	// avatar images of the account.
	Avatars []AvatarInfo `json:"avatars,omitempty"`
	// Whether the query would deliver more results if not limited.
	MoreAccounts bool `json:"_more_accounts,omitempty"`
	// Status message of the account.
	Status string `json:"status,omitempty"`
	// Whether the account is inactive.
	Inactive bool `json:"inactive,omitempty"`
	// List of additional tags that this account has.
	Tags []string `json:"tags,omitempty"`
}

// AvatarInfo holds information about an avatar image of an account.
// This describes Gerrit JSON data.
type AvatarInfo struct {
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// AccountInput describes an account to create, or the author identity of a
// new change.
// This describes Gerrit JSON data.
type AccountInput struct {
	Username     string   `json:"username,omitempty"`
	Name         string   `json:"name,omitempty"`
	DisplayName  string   `json:"display_name,omitempty"`
	Email        string   `json:"email,omitempty"`
	SSHKey       string   `json:"ssh_key,omitempty"`
	HTTPPassword string   `json:"http_password,omitempty"`
	Groups       []string `json:"groups,omitempty"`
}

// GpgKeyInfo contains information about a GPG public key.
// This describes Gerrit JSON data.
type GpgKeyInfo struct {
	// The 8-char hex GPG key ID. Not set in a push certificate.
	ID string `json:"id,omitempty"`
	// The 40-char (plus spaces) hex GPG key fingerprint.
	Fingerprint string `json:"fingerprint,omitempty"`
	// OpenPGP User IDs associated with the public key.
	UserIDs []string `json:"user_ids,omitempty"`
	// ASCII armored public key material.
	Key string `json:"key,omitempty"`
	// The result of server-side checks on the key; one of BAD, OK, or TRUSTED.
	Status string `json:"status,omitempty"`
	// A list of human-readable problem strings found in the course of
	// checking whether the key is valid and trusted.
	Problems []string `json:"problems,omitempty"`
}

// GroupBaseInfo contains base information about a group.
// This describes Gerrit JSON data.
type GroupBaseInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
