package credential

import "errors"

var (
	ErrNotFound         = errors.New("credential not found")
	ErrModelNotFound    = errors.New("model not found")
	ErrDuplicateName    = errors.New("credential name already exists")
	ErrEmptySecret      = errors.New("api key is required")
	ErrEmptyName        = errors.New("name is required")
	ErrUnsupportedModel = errors.New("model is not in the supported catalog")
)
