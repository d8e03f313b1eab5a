package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors.
var (
	ErrSnapshotFailed = errors.New("metrics snapshot failed")
)
