package interfaces

//go:generate moq -out mocks/classifier_mock.go -pkg mocks . Classifier

import (
	"context"

	"github.com/secmon-lab/ocelot/pkg/domain/model"
)

// Classifier sends an encoded image plus free-text context to the external
// classification gateway and returns its response.
type Classifier interface {
	Classify(ctx context.Context, comment string, image model.EncodedImage) (model.ClassificationResponse, error)
}
