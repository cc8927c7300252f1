package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/facerec/internal/imaging"
	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/repository"
)

// Registry exposes the read side of the model registry.
type Registry interface {
	Latest(ctx context.Context) (*repository.Model, error)
}

// ArtifactSource loads a published model's native artifact.
type ArtifactSource interface {
	ReadArtifact(version int64) ([]byte, error)
}

// Predictor classifies a decoded image with a trained artifact.
type Predictor interface {
	Predict(ctx context.Context, artifact []byte, image *imaging.PixelBuffer) ([]string, error)
}

// PredictionUseCase classifies uploaded images against the latest published
// model. The artifact is reloaded from storage on every uncached call.
type PredictionUseCase struct {
	registry  Registry
	artifacts ArtifactSource
	predictor Predictor
	cache     Cache
	cacheTTL  time.Duration
	logger    *zap.Logger
}

type cachedPrediction struct {
	Labels    []string  `json:"labels"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPredictionUseCase constructs a new use case instance.
func NewPredictionUseCase(registry Registry, artifacts ArtifactSource, predictor Predictor, cache Cache, logger *zap.Logger) *PredictionUseCase {
	return &PredictionUseCase{
		registry:  registry,
		artifacts: artifacts,
		predictor: predictor,
		cache:     cache,
		cacheTTL:  5 * time.Minute,
		logger:    logger.Named("prediction_usecase"),
	}
}

// Recognize returns the predicted labels for the uploaded image along with
// the model version that produced them. The latest model is read from the
// registry on every call; the prediction cache is keyed by model version
// and image hash, so labels computed under an older version are never
// served for a newer one.
func (uc *PredictionUseCase) Recognize(ctx context.Context, imageBytes []byte) ([]string, int64, error) {
	if len(imageBytes) == 0 {
		return nil, 0, ErrImageRequired
	}

	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.recognize", requestID)

	model, err := uc.registry.Latest(ctx)
	if errors.Is(err, repository.ErrNoModel) {
		return nil, 0, ErrModelNotReady
	}
	if err != nil {
		wrapped := logging.NewOperationError("usecase.latest_model", requestID, err)
		opLogger.Error("failed to read registry", zap.Error(wrapped))
		return nil, 0, wrapped
	}

	hash := sha1.Sum(imageBytes)
	cacheKey := fmt.Sprintf("prediction:v%d:%s", model.Version, hex.EncodeToString(hash[:]))
	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil {
		var payload cachedPrediction
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			opLogger.Warn("failed to decode cached prediction", zap.Error(err))
		} else {
			return payload.Labels, payload.Version, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		opLogger.Warn("failed to read cache", zap.Error(err))
	}

	pixels, err := imaging.Decode(imageBytes)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.decode_image", requestID, err)
		opLogger.Error("failed to decode image", zap.Error(wrapped))
		return nil, 0, wrapped
	}

	artifact, err := uc.artifacts.ReadArtifact(model.Version)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.load_artifact", requestID, err)
		opLogger.Error("failed to load artifact", zap.Error(wrapped), zap.Int64("version", model.Version))
		return nil, 0, wrapped
	}

	labels, err := uc.predictor.Predict(ctx, artifact, pixels)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.predict", requestID, err)
		opLogger.Error("prediction failed", zap.Error(wrapped))
		return nil, 0, wrapped
	}

	serialized, err := json.Marshal(cachedPrediction{
		Labels:    labels,
		Version:   model.Version,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		opLogger.Warn("failed to serialize prediction", zap.Error(err))
	} else if err := uc.cache.Set(ctx, cacheKey, string(serialized), uc.cacheTTL); err != nil {
		opLogger.Warn("failed to cache prediction", zap.Error(err))
	}

	return labels, model.Version, nil
}
