package catalog

import "errors"

var (
	ErrRootRequired      = errors.New("catalog: scan root is required")
	ErrRootNotDirectory  = errors.New("catalog: scan root is not a directory")
	ErrDescriptorInvalid = errors.New("catalog: series descriptor is invalid")
)
