package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput = errors.New("input text is empty")
	ErrEmptyTask  = errors.New("task name is empty")
)
