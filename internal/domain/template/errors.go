package template

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidIcon      = errors.New("icon is not in the allowed set")
	ErrInvalidRange     = errors.New("range minimum exceeds maximum")
)
