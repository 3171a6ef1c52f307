package repository

import "errors"

// 対象行が見つからない
var ErrNotFound = errors.New("not found")
