package worker

// DefaultWorkerCount is used when a pool is created with no workers
const DefaultWorkerCount = 1

const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "Worker job panicked"
)

// ErrMsgShutdownTimeout is returned when workers do not exit before the deadline
const ErrMsgShutdownTimeout = "worker pool shutdown timed out"
