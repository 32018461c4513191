package ports

import "furrow/internal/domain/farmer"

type ActionMetrics interface {
	RecordSuccess(action string, resultCode farmer.ResultCode)
	RecordConflict()
	RecordFailure()
}
