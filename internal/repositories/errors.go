package repositories

import "errors"

var (
	ErrNotFound     = errors.New("[repository]: record not found")
	ErrSlugTaken    = errors.New("[repository]: slug already exists")
	ErrURLTaken     = errors.New("[repository]: url already exists")
	ErrLinkNotFound = errors.New("[repository]: referenced link does not exist")
	ErrUnknown      = errors.New("[repository]: unknown error")
)
