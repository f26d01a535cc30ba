package data

import "errors"

// ErrUserIDRequired is returned when a repository call is missing the user scope.
var ErrUserIDRequired = errors.New("user_id is required")
