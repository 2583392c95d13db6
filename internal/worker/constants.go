package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Tick Job
// ============================================================================

// Log messages for the periodic simulation tick
const (
	LogMsgTickCompleted = "Tick completed"
	LogMsgTickFailed    = "Tick failed"
	LogMsgTickSkipped   = "Tick skipped, no game loaded"
)

// ============================================================================
// Log Messages - Weekly Job
// ============================================================================

// Log messages for the weekly streaming and housing pass
const (
	LogMsgWeeklyPassCompleted = "Weekly pass completed"
	LogMsgStreamingFailed     = "Weekly streaming pass failed"
	LogMsgUpkeepFailed        = "Housing upkeep pass failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
