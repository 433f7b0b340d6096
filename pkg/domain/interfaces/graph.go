package interfaces

//go:generate moq -out mocks/graph_mock.go -pkg mocks . TokenSource GraphClient

import (
	"context"

	"github.com/secmon-lab/ocelot/pkg/domain/model"
)

// TokenSource obtains a bearer credential for the messaging backend.
// A credential is acquired once per invocation and never cached.
type TokenSource interface {
	AcquireToken(ctx context.Context) (string, error)
}

// GraphClient is the messaging backend surface the orchestrator needs:
// locate the image of a message, fetch its bytes, and reply into the thread.
type GraphClient interface {
	// ResolveImage locates the image of a message: structured hostedContents
	// first, markup extraction as fallback. index selects among multiple
	// candidates (0 = first).
	ResolveImage(ctx context.Context, token string, ref model.MessageRef, index int) (model.AttachmentRef, error)

	// FetchImage retrieves the bytes behind an AttachmentRef and returns
	// them base64-encoded.
	FetchImage(ctx context.Context, token string, ref model.MessageRef, att model.AttachmentRef) (model.EncodedImage, error)

	// PostReply posts a text reply into the message's thread. Best-effort:
	// the outcome is reported as a status, never as an error.
	PostReply(ctx context.Context, token string, ref model.MessageRef, text string) model.ReplyStatus
}
