package drift

import "github.com/cockroachdb/errors"

// ErrInvalidParams indicates Params that fail Validate.
var ErrInvalidParams = errors.New("drift: invalid parameters")
