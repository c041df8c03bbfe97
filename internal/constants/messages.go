package constants

// Message format constants
const (
	// Error messages
	ErrMsgFailedToWriteFile = "failed to write file: %v\n"

	// Success messages
	MsgCreatedFile = "Created: %s\n"
)
