package observe

import "errors"

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("observe: invalid config")
