package catalog

import "errors"

var (
	ErrEntryNotFound        = errors.New("catalog entry not found")
	ErrNotEntryOwner        = errors.New("you are not the owner of this catalog entry")
	ErrUnknownKind          = errors.New("unknown catalog entry kind")
	ErrProductWithDuration  = errors.New("products cannot have a duration")
	ErrServiceNeedsDuration = errors.New("services need a positive duration")
	ErrServiceWithStock     = errors.New("services cannot carry SKU or stock")
)
