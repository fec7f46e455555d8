package service

import "fmt"

var (
	ErrLogNotFound         = fmt.Errorf("log not found")
	ErrLogAlreadyExists    = fmt.Errorf("log already exists")
	ErrInvalidLog          = fmt.Errorf("log entry rejected by storage constraints")
	ErrCannotGetLogs       = fmt.Errorf("cannot get logs")
	ErrCannotAggregateLogs = fmt.Errorf("cannot aggregate logs")
	ErrCannotGetLog        = fmt.Errorf("cannot get log")
	ErrCannotCreateLog     = fmt.Errorf("cannot create log")
	ErrCannotUpdateLog     = fmt.Errorf("cannot update log")
	ErrCannotDeleteLog     = fmt.Errorf("cannot delete log")
	ErrCannotGenerateLogs  = fmt.Errorf("cannot generate logs")
)
