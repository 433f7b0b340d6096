package usecase

import (
	"context"

	"github.com/secmon-lab/ocelot/pkg/domain/model"
)

// ProcessUseCase defines the interface for webhook invocation processing
type ProcessUseCase interface {
	// Process runs one invocation end to end. A nil error with OK:false
	// means the image could not be resolved and an apology was posted; a
	// non-nil error is a fatal failure surfaced to the HTTP caller.
	Process(ctx context.Context, req *model.ProcessRequest) (*model.ProcessResult, error)
}
