package constants

// NATS Subjects
const (
	// Published after a successful batch dispatch; consumed by the notifier
	SubjectDispatchBatch = "dispatch.batch"
)
