package ports

import "emberside/internal/domain/survival"

type ActionMetrics interface {
	RecordSettled(kind survival.OutcomeKind)
	RecordConflict()
	RecordFailure()
}
