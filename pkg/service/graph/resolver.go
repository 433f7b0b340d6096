package graph

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
)

// ResolveImage locates the image of a message. Two tiers, first match wins:
//
//  1. The structured hostedContents list. Authoritative, no HTML parsing.
//  2. <img src> references extracted from the rendered message markup.
//     The backend emits no structured attachment for pasted or linked
//     images, so markup inspection is the only recovery path.
//
// index selects among multiple candidates within the winning tier. A message
// with neither representation yields model.ErrNoImageFound.
func (c *Client) ResolveImage(ctx context.Context, token string, ref model.MessageRef, index int) (model.AttachmentRef, error) {
	if index < 0 {
		return model.AttachmentRef{}, goerr.New("attachment index must not be negative",
			goerr.V("index", index), goerr.T(model.ErrTagResolve))
	}

	ids, err := c.ListHostedContents(ctx, token, ref)
	if err != nil {
		return model.AttachmentRef{}, goerr.Wrap(err, "failed to query structured attachments",
			goerr.T(model.ErrTagResolve))
	}

	if len(ids) > 0 {
		if index >= len(ids) {
			return model.AttachmentRef{}, goerr.New("attachment index out of range",
				goerr.V("index", index), goerr.V("count", len(ids)),
				goerr.T(model.ErrTagResolve))
		}

		ctxlog.From(ctx).Debug("Resolved image via hostedContents",
			"messageID", ref.MessageID,
			"count", len(ids),
			"index", index,
		)
		return model.AttachmentRef{Kind: model.AttachmentHosted, ContentID: ids[index]}, nil
	}

	markup, err := c.GetMessageContent(ctx, token, ref)
	if err != nil {
		return model.AttachmentRef{}, goerr.Wrap(err, "failed to get message markup",
			goerr.T(model.ErrTagResolve))
	}

	srcs := ExtractImageSources(markup)
	if len(srcs) == 0 {
		// The sentinel's message is the user-visible detail; returned
		// unwrapped so the text stays exact.
		return model.AttachmentRef{}, model.ErrNoImageFound
	}
	if index >= len(srcs) {
		return model.AttachmentRef{}, goerr.New("image reference index out of range",
			goerr.V("index", index), goerr.V("count", len(srcs)),
			goerr.T(model.ErrTagResolve))
	}

	ctxlog.From(ctx).Debug("Resolved image via markup fallback",
		"messageID", ref.MessageID,
		"count", len(srcs),
		"index", index,
	)
	return model.AttachmentRef{
		Kind: model.AttachmentInline,
		URL:  NormalizeSource(srcs[index], ref, c.baseURL),
	}, nil
}
