package repository

import "errors"

var ErrPreferenceNotFound = errors.New("preference not found")
