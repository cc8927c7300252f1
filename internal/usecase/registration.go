package usecase

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/repository"
	"github.com/example/facerec/internal/training"
)

// UserStore defines the persistence operations registration needs.
type UserStore interface {
	Create(ctx context.Context, user *repository.User) error
}

// PhotoStore persists uploaded photos under a user's folder.
type PhotoStore interface {
	Save(userID uint, originalName string, src io.Reader) (string, error)
}

// TaskQueue enqueues training rounds. The queue reserves the version itself.
type TaskQueue interface {
	Enqueue() training.Task
}

// PhotoUpload is one uploaded photo of the registered user.
type PhotoUpload struct {
	Filename string
	Data     io.Reader
}

// RegistrationUseCase creates users, stores their photos, and requests a
// training round when photos were supplied. It never blocks on training.
type RegistrationUseCase struct {
	users  UserStore
	photos PhotoStore
	queue  TaskQueue
	logger *zap.Logger
}

// NewRegistrationUseCase constructs a new use case instance.
func NewRegistrationUseCase(users UserStore, photos PhotoStore, queue TaskQueue, logger *zap.Logger) *RegistrationUseCase {
	return &RegistrationUseCase{
		users:  users,
		photos: photos,
		queue:  queue,
		logger: logger.Named("registration_usecase"),
	}
}

// Register creates the user, saves the photos, and enqueues exactly one
// training task iff at least one photo was durably saved. It returns the
// created user and the reserved training version (0 when no round was
// requested).
func (uc *RegistrationUseCase) Register(ctx context.Context, name, position string, photos []PhotoUpload) (*repository.User, int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, 0, ErrNameRequired
	}

	user := &repository.User{Name: name, Position: position}
	if err := uc.users.Create(ctx, user); err != nil {
		wrapped := logging.NewOperationError("usecase.create_user", "", err)
		uc.logger.Error("failed to create user", zap.Error(wrapped))
		return nil, 0, wrapped
	}
	opLogger := uc.logger.With(zap.Uint("user_id", user.ID))

	saved := 0
	for _, photo := range photos {
		path, err := uc.photos.Save(user.ID, photo.Filename, photo.Data)
		if err != nil {
			wrapped := logging.NewOperationError("usecase.save_photo", "", err)
			opLogger.Error("failed to save photo", zap.Error(wrapped), zap.String("filename", photo.Filename))
			return nil, 0, wrapped
		}
		opLogger.Debug("photo saved", zap.String("path", path))
		saved++
	}

	var version int64
	if saved > 0 {
		task := uc.queue.Enqueue()
		version = task.Version
		opLogger.Info("training task enqueued",
			zap.Int64("version", version),
			zap.Int("photos", saved))
	}
	return user, version, nil
}
