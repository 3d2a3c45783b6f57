package http

import "errors"

var errMissingType = errors.New("activity type is required")
