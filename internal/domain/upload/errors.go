package upload

import "errors"

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrNotAssetOwner    = errors.New("you are not the owner of this asset")
	ErrAlreadyCommitted = errors.New("asset is already committed")
	ErrAssetExpired     = errors.New("staged asset has expired")
)
