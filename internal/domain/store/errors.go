package store

import "errors"

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrNotStoreOwner = errors.New("you are not the owner of this store")
	ErrDuplicateSlug = errors.New("store slug is already taken")
)
