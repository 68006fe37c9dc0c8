package models

// ProjectStatus is the state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "ACTIVE"
	ProjectStatusReadOnly ProjectStatus = "READ_ONLY"
	ProjectStatusHidden   ProjectStatus = "HIDDEN"
)

// ProjectInfo contains information about a project.
// This describes Gerrit JSON data.
type ProjectInfo struct {
	// The URL encoded project name.
	ID string `json:"id"`
	// The name of the project. Not set if returned in a map where the
	// project name is used as map key.
	Name string `json:"name,omitempty"`
	// The name of the parent project.
	Parent      string        `json:"parent,omitempty"`
	Description string        `json:"description,omitempty"`
	State       ProjectStatus `json:"state,omitempty"`
	// Map of branch names to HEAD revisions.
	Branches map[string]string `json:"branches,omitempty"`
	// Map of label names to [LabelTypeInfo] entries.
	Labels   map[string]LabelTypeInfo `json:"labels,omitempty"`
	WebLinks []WebLinkInfo            `json:"web_links,omitempty"`
}

// LabelTypeInfo describes a label type of a project.
// This describes Gerrit JSON data.
type LabelTypeInfo struct {
	// Map of the label values to their descriptions.
	Values       map[string]string `json:"values,omitempty"`
	DefaultValue int               `json:"default_value"`
}

// ServerVersion is the version string reported by /config/server/version.
type ServerVersion string
