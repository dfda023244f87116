package store

import "errors"

// 哨兵錯誤，供 handler 以 errors.Is 分辨查詢結果。
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)
