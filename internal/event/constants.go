package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Change operations carried in ChangePayloadV1
const (
	OperationUpsert = "upsert"
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationClear  = "clear"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	ErrMsgDecodePayloadFormat = "decode event payload: %w"
)
