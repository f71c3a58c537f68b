package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveNotCancellable   = errors.New("only pending or approved leave can be cancelled")
	ErrLeaveOverlaps         = errors.New("leave request overlaps an existing request")
)
