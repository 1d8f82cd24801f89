package postgres

// Table names, created by migrations/postgres
const (
	tableStateKeys = "spinner_state_keys"
	tableOptions   = "spinner_options"
	tableHistory   = "spinner_history"
)

// Error Messages - State Operations
const (
	ErrMsgFailedToCreateTxManager = "failed to create transaction manager"
	ErrMsgFailedToCheckKey        = "failed to check state key"
	ErrMsgFailedToQueryOptions    = "failed to query options"
	ErrMsgFailedToScanOption      = "failed to scan option"
	ErrMsgFailedToQueryHistory    = "failed to query history"
	ErrMsgFailedToScanHistory     = "failed to scan history entry"
	ErrMsgFailedToDeleteRows      = "failed to delete rows"
	ErrMsgFailedToInsertRows      = "failed to insert rows"
	ErrMsgFailedToMarkKey         = "failed to mark state key"
)
