package models

import (
	"net"
	"net/url"
	"strconv"
)

// DefaultPort is shown for remotes registered without an explicit port.
const DefaultPort = 8080

// Remote is a named Gerrit server registered with the ger tool.
type Remote struct {
	Name string `json:"name"`
	// URL is the base address, e.g. "https://review.example.com".
	URL string `json:"url"`
	// Port overrides the port of URL when non-zero.
	Port     int    `json:"port,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// DisplayPort returns Port, or DefaultPort when none was registered.
func (r Remote) DisplayPort() int {
	if r.Port == 0 {
		return DefaultPort
	}
	return r.Port
}

// Address returns URL with Port applied.
func (r Remote) Address() string {
	if r.Port == 0 {
		return r.URL
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Hostname() == "" {
		return r.URL
	}
	u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(r.Port))
	return u.String()
}
