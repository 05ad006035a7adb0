package prompt

import "errors"

var (
	ErrInvalidPriority = errors.New("priority must be high, medium or low")
	ErrInvalidPolicy   = errors.New("conflict resolution must be prompt_wins, patterns_win or merge_smart")
	ErrEmptyPrompt     = errors.New("prompt text is required")
)
