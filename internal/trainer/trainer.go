package trainer

import (
	"context"

	"github.com/example/facerec/internal/imaging"
)

// Example is one labeled training image.
type Example struct {
	Label string
	Image []byte
}

// Dataset is the labeled input of one training round. LabelColumn names the
// column the trainer should treat as the classification target.
type Dataset struct {
	LabelColumn string
	Examples    []Example
}

// TrainedModel contains the outcome of a completed training run: the class
// labels the classifier can predict, the native artifact, and an
// interchange-format copy for client-side use.
type TrainedModel struct {
	Classes  []string
	Artifact []byte
	CoreML   []byte
}

// Client exposes the training and prediction capabilities used by the core.
// Both calls are opaque to the core; Train in particular is long-running and
// must only ever be invoked from the training worker.
type Client interface {
	Train(ctx context.Context, dataset *Dataset) (*TrainedModel, error)
	Predict(ctx context.Context, artifact []byte, image *imaging.PixelBuffer) ([]string, error)
}
