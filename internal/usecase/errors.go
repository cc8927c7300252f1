package usecase

import "errors"

// ErrNameRequired is returned by registration when the name field is empty.
var ErrNameRequired = errors.New("name is required")

// ErrModelNotReady is returned by prediction and model-info when no model
// has ever been published.
var ErrModelNotReady = errors.New("model is not ready")

// ErrImageRequired is returned by prediction when no image was supplied.
var ErrImageRequired = errors.New("image is required")
