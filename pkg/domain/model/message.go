package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/types"
)

// MessageRef names one message in one channel of one team. It is an
// immutable value; every Graph URL of an invocation is derived from it.
type MessageRef struct {
	TeamID    types.TeamID
	ChannelID types.ChannelID
	MessageID types.MessageID
}

// Validate checks that all identifiers are present
func (r MessageRef) Validate() error {
	if r.TeamID == "" || r.ChannelID == "" || r.MessageID == "" {
		return goerr.New("team_id, channel_id and message_id are required",
			goerr.V("teamID", r.TeamID),
			goerr.V("channelID", r.ChannelID),
			goerr.V("messageID", r.MessageID))
	}
	return nil
}

// AttachmentKind discriminates how the image bytes of a message are reachable
type AttachmentKind int

const (
	// AttachmentHosted is a structured hostedContents entry, fetched via
	// the message's content sub-resource
	AttachmentHosted AttachmentKind = iota + 1
	// AttachmentInline is an image URL extracted from the message markup
	AttachmentInline
)

// String returns the string representation
func (k AttachmentKind) String() string {
	switch k {
	case AttachmentHosted:
		return "hosted"
	case AttachmentInline:
		return "inline"
	default:
		return "unknown"
	}
}

// AttachmentRef points at the image bytes of one message. Exactly one of
// ContentID or URL is set, depending on Kind.
type AttachmentRef struct {
	Kind      AttachmentKind
	ContentID string
	URL       string
}

// EncodedImage is a base64 text encoding of raw image bytes. It is held only
// for the duration of one invocation and must never be logged.
type EncodedImage string

// ReplyStatus is the outcome of a best-effort thread reply post
type ReplyStatus int

const (
	// ReplyPosted means the backend accepted the reply
	ReplyPosted ReplyStatus = iota + 1
	// ReplyFailed means the post failed; the failure is logged and swallowed
	ReplyFailed
)

// String returns the string representation
func (s ReplyStatus) String() string {
	switch s {
	case ReplyPosted:
		return "posted"
	case ReplyFailed:
		return "failed"
	default:
		return "unknown"
	}
}
