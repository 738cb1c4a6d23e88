package models

import "strings"

// ContainerState mirrors the server's container state enum. Values the
// server may add later are carried through as-is rather than rejected.
type ContainerState string

const (
	StateRunning ContainerState = "RUNNING"
	StatePaused  ContainerState = "PAUSED"
	StateExited  ContainerState = "EXITED"
)

// Display returns the state in the lowercase form used for table output.
func (s ContainerState) Display() string {
	return strings.ToLower(string(s))
}

// Container is a Docker container as reported by the Unraid API.
// Instances are fetched fresh for every command and never cached.
type Container struct {
	ID     string         `json:"id"`
	Names  []string       `json:"names"`
	Image  string         `json:"image"`
	State  ContainerState `json:"state"`
	Status string         `json:"status"`
	Ports  []Port         `json:"ports,omitempty"`
}

// Port is a single published port mapping.
type Port struct {
	IP          string `json:"ip,omitempty"`
	PrivatePort int    `json:"privatePort"`
	PublicPort  int    `json:"publicPort,omitempty"`
	Type        string `json:"type,omitempty"`
}

// DisplayName returns the container's primary alias with the Docker
// path separator stripped, or "unnamed" when the server reported none.
func (c Container) DisplayName() string {
	if len(c.Names) == 0 {
		return "unnamed"
	}
	return strings.TrimPrefix(c.Names[0], "/")
}

// HasName reports whether any of the container's aliases matches name.
// Matching is case-insensitive and ignores a leading "/" on the alias.
func (c Container) HasName(name string) bool {
	for _, alias := range c.Names {
		if strings.EqualFold(strings.TrimPrefix(alias, "/"), name) {
			return true
		}
	}
	return false
}
