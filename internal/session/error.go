package session

import "errors"

var ErrUnauthenticated = errors.New("unauthenticated")
