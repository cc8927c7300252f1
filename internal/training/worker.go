package training

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/facerec/internal/imagestore"
	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/repository"
	"github.com/example/facerec/internal/trainer"
)

// ErrEmptyDataset is returned by a round that finds no images to train on.
// The round aborts, its version stays skipped, and no retry happens.
var ErrEmptyDataset = errors.New("training dataset is empty")

// ImageSource yields the full image store contents as labeled images.
type ImageSource interface {
	Scan() ([]imagestore.LabeledImage, error)
}

// UserResolver resolves classifier labels back to user rows. Ids without a
// row are absent from the result.
type UserResolver interface {
	FindByIDs(ctx context.Context, ids []uint) ([]repository.User, error)
}

// Registry accepts the final publish step of a round.
type Registry interface {
	Append(ctx context.Context, model *repository.Model) error
}

// Worker is the single background consumer of the training queue. Exactly
// one round executes at a time; the trainer capability is non-reentrant and
// resource heavy, and this serialization is what keeps version publication
// ordered.
type Worker struct {
	queue     *Queue
	source    ImageSource
	trainer   trainer.Client
	users     UserResolver
	registry  Registry
	artifacts *ArtifactStore
	split     float64
	rng       *rand.Rand
	logger    *zap.Logger
}

// NewWorker constructs a worker. split is the train partition ratio; values
// outside (0, 1) fall back to 0.8.
func NewWorker(queue *Queue, source ImageSource, tc trainer.Client, users UserResolver, registry Registry, artifacts *ArtifactStore, split float64, logger *zap.Logger) *Worker {
	if split <= 0 || split >= 1 {
		split = 0.8
	}
	return &Worker{
		queue:     queue,
		source:    source,
		trainer:   tc,
		users:     users,
		registry:  registry,
		artifacts: artifacts,
		split:     split,
		rng:       rand.New(rand.NewSource(rand.Int63())),
		logger:    logger.Named("training_worker"),
	}
}

// Run consumes the queue until the context is cancelled. A failed round is
// logged and the loop moves on; it never crashes the worker and never
// retries the failed version.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("training worker started")
	for {
		task, err := w.queue.Dequeue(ctx)
		if err != nil {
			w.logger.Info("training worker stopped", zap.Error(err))
			return
		}
		if err := w.runRound(ctx, task); err != nil {
			logging.WithOperation(w.logger, "worker.round", roundRef(task)).
				Error("training round failed", zap.Error(err))
		}
		w.queue.Complete()
	}
}

func (w *Worker) runRound(ctx context.Context, task Task) error {
	ref := roundRef(task)
	opLogger := logging.WithOperation(w.logger, "worker.round", ref)

	opLogger.Info("loading images")
	images, err := w.source.Scan()
	if err != nil {
		return logging.NewOperationError("worker.scan", ref, err)
	}
	if len(images) == 0 {
		return logging.NewOperationError("worker.scan", ref, ErrEmptyDataset)
	}

	dataset, evalCount := w.buildDataset(images)
	opLogger.Info("training classifier",
		zap.Int("train", len(dataset.Examples)),
		zap.Int("eval", evalCount))

	model, err := w.trainer.Train(ctx, dataset)
	if err != nil {
		return logging.NewOperationError("worker.train", ref, err)
	}

	opLogger.Info("saving model")
	modelPath, coremlPath, err := w.artifacts.Write(task.Version, model.Artifact, model.CoreML)
	if err != nil {
		return logging.NewOperationError("worker.save_artifact", ref, err)
	}
	opLogger.Debug("artifacts written",
		zap.String("model", modelPath),
		zap.String("coreml", coremlPath))

	users, err := w.resolveUsers(ctx, model.Classes)
	if err != nil {
		return logging.NewOperationError("worker.resolve_users", ref, err)
	}

	published := &repository.Model{
		Version: task.Version,
		URL:     w.artifacts.PublishedURL(task.Version),
		Users:   users,
	}
	if err := w.registry.Append(ctx, published); err != nil {
		return logging.NewOperationError("worker.publish", ref, err)
	}

	opLogger.Info("done creating model", zap.Int("users", len(users)))
	return nil
}

// buildDataset shuffles the scanned images and keeps the train partition,
// labels taken from the enclosing user folders. The evaluation partition is
// held out and only its size reported; a shuffle that would leave the train
// partition empty keeps everything instead.
func (w *Worker) buildDataset(images []imagestore.LabeledImage) (*trainer.Dataset, int) {
	shuffled := make([]imagestore.LabeledImage, len(images))
	copy(shuffled, images)
	w.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	cut := int(float64(len(shuffled)) * w.split)
	if cut == 0 {
		cut = len(shuffled)
	}

	dataset := &trainer.Dataset{LabelColumn: "label"}
	for _, img := range shuffled[:cut] {
		dataset.Examples = append(dataset.Examples, trainer.Example{Label: img.Label, Image: img.Data})
	}
	return dataset, len(shuffled) - cut
}

// resolveUsers maps the classifier's class labels back to user rows. Labels
// that do not parse as user ids, or whose user no longer exists, are
// dropped silently: stale images under removed folders must not fail a
// round.
func (w *Worker) resolveUsers(ctx context.Context, classes []string) ([]repository.User, error) {
	ids := make([]uint, 0, len(classes))
	for _, class := range classes {
		id, err := strconv.ParseUint(class, 10, 64)
		if err != nil {
			w.logger.Warn("ignoring non-numeric class label", zap.String("label", class))
			continue
		}
		ids = append(ids, uint(id))
	}
	return w.users.FindByIDs(ctx, ids)
}

func roundRef(task Task) string {
	return fmt.Sprintf("v%d", task.Version)
}
