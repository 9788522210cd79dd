package assistant

import "errors"

var (
	ErrEstimatorUnavailable = errors.New("estimator is unavailable")
)
