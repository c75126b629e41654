package replicate

import "github.com/cockroachdb/errors"

// ErrInvalidConfig indicates a Config that fails Validate.
var ErrInvalidConfig = errors.New("replicate: invalid config")

// ErrEmptyResult indicates a summary was requested for a Result without
// replicates.
var ErrEmptyResult = errors.New("replicate: no replicates to summarize")
