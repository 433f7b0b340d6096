package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ocelot/pkg/domain/interfaces"
	"github.com/secmon-lab/ocelot/pkg/domain/model"
	"github.com/secmon-lab/ocelot/pkg/domain/types"
)

// Relay orchestrates one invocation: acquire a token, resolve and fetch the
// message image, classify it, reply into the thread.
//
// Failure handling is deliberately asymmetric and the triggering workflow
// depends on it: resolution and fetch failures are recovered into an apology
// reply and OK:false, while token acquisition and classification failures
// propagate unhandled. Reply posting itself never fails the invocation.
type Relay struct {
	tokens     interfaces.TokenSource
	graph      interfaces.GraphClient
	classifier interfaces.Classifier
	messages   model.Messages
}

// NewRelay creates the orchestrator use case
func NewRelay(tokens interfaces.TokenSource, graph interfaces.GraphClient, classifier interfaces.Classifier, messages model.Messages) *Relay {
	return &Relay{
		tokens:     tokens,
		graph:      graph,
		classifier: classifier,
		messages:   messages,
	}
}

// Process runs one invocation end to end
func (uc *Relay) Process(ctx context.Context, req *model.ProcessRequest) (*model.ProcessResult, error) {
	if req == nil {
		return nil, goerr.New("process request is nil")
	}
	if err := req.Ref.Validate(); err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx).With("invocation", types.NewInvocationID())
	ctx = ctxlog.With(ctx, logger)

	comment := req.Comment
	if comment == "" {
		comment = uc.messages.DefaultComment
	}

	// One token per invocation; never cached.
	token, err := uc.tokens.AcquireToken(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to acquire backend token")
	}

	image, err := uc.resolveAndFetch(ctx, token, req.Ref)
	if err != nil {
		detail := err.Error()
		logger.Warn("Image resolution failed, posting apology",
			"error", err,
			"messageID", req.Ref.MessageID,
		)

		status := uc.graph.PostReply(ctx, token, req.Ref, uc.messages.Apology(detail))
		logger.Info("Apology reply outcome", "status", status.String())

		return &model.ProcessResult{OK: false, Detail: detail}, nil
	}

	resp, err := uc.classifier.Classify(ctx, comment, image)
	if err != nil {
		return nil, goerr.Wrap(err, "classification failed")
	}

	answer, ok := resp.Answer()
	if !ok {
		answer = uc.messages.NoMatchAnswer
	}

	status := uc.graph.PostReply(ctx, token, req.Ref, answer)
	logger.Info("Classification reply outcome",
		"status", status.String(),
		"hasAnswer", ok,
	)

	return &model.ProcessResult{OK: true, Response: resp}, nil
}

// resolveAndFetch composes the two resolution-phase calls. Any error from
// either is recoverable; the first attachment candidate is always used (the
// endpoint exposes no index override).
func (uc *Relay) resolveAndFetch(ctx context.Context, token string, ref model.MessageRef) (model.EncodedImage, error) {
	att, err := uc.graph.ResolveImage(ctx, token, ref, 0)
	if err != nil {
		return "", err
	}

	return uc.graph.FetchImage(ctx, token, ref, att)
}
