package async

import "errors"

var ErrNilFuture = errors.New("async: nil future")
