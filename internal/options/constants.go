package options

// DefaultSampleName is the sample set used when no options are stored
const DefaultSampleName = "food"

// Log messages
const (
	LogMsgOptionsLoaded     = "Loaded stored options"
	LogMsgOptionsDefaulted  = "Using default options"
	LogMsgOptionsMalformed  = "Stored options are malformed, using defaults"
	LogMsgOptionsSaveFailed = "Failed to save options, keeping in-memory state"
	LogMsgOptionAdded       = "Option added"
	LogMsgOptionRemoved     = "Option removed"
	LogMsgOptionEdited      = "Option edited"
	LogMsgOptionWeightSet   = "Option weight set"
	LogMsgOptionsReplaced   = "Options replaced"
	LogMsgOptionsCleared    = "Options cleared"
	LogMsgSampleLoaded      = "Sample set loaded"
)

// Error contexts
const (
	ErrContextParseSamples   = "failed to parse sample sets"
	ErrContextInvalidSample  = "invalid sample set"
	ErrContextReplaceOptions = "failed to replace options"
)
