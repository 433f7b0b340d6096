package types

import (
	"github.com/google/uuid"
)

// TeamID represents a Teams team identifier
type TeamID string

// String returns the string representation
func (id TeamID) String() string {
	return string(id)
}

// ChannelID represents a channel identifier within a team
type ChannelID string

// String returns the string representation
func (id ChannelID) String() string {
	return string(id)
}

// MessageID represents a channel message identifier
type MessageID string

// String returns the string representation
func (id MessageID) String() string {
	return string(id)
}

// InvocationID identifies a single webhook invocation for log correlation
type InvocationID string

// String returns the string representation
func (id InvocationID) String() string {
	return string(id)
}

// NewInvocationID creates a new InvocationID
func NewInvocationID() InvocationID {
	return InvocationID(uuid.New().String())
}
