package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/repository"
)

// ModelInfoUseCase reports the latest published model's metadata.
type ModelInfoUseCase struct {
	registry Registry
	logger   *zap.Logger
}

// NewModelInfoUseCase constructs a new use case instance.
func NewModelInfoUseCase(registry Registry, logger *zap.Logger) *ModelInfoUseCase {
	return &ModelInfoUseCase{
		registry: registry,
		logger:   logger.Named("modelinfo_usecase"),
	}
}

// LatestModel returns the model with the maximum version, including the
// users it can recognize. The registry is read on every call so a model is
// visible as soon as its publish commits.
func (uc *ModelInfoUseCase) LatestModel(ctx context.Context) (*repository.Model, error) {
	model, err := uc.registry.Latest(ctx)
	if errors.Is(err, repository.ErrNoModel) {
		return nil, ErrModelNotReady
	}
	if err != nil {
		wrapped := logging.NewOperationError("usecase.latest_model", "", err)
		uc.logger.Error("failed to read registry", zap.Error(wrapped))
		return nil, wrapped
	}
	return model, nil
}
