package activity

import "errors"

var (
	ErrBrandIDRequired = errors.New("brand ID is required")
	ErrBrandNotFound   = errors.New("brand not found")
	ErrFetchActivity   = errors.New("error fetching brand activity")
)
