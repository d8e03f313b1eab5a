package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrEmptyDataset    = errors.New("dataset is empty")
	ErrScoreOutOfRange = errors.New("performance score out of range")
)
