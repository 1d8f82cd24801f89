package discord

import (
	"errors"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// API client settings
const (
	APIPrefix             = "/api/v1"
	APIKeyHeader          = "X-API-Key"
	DefaultRequestTimeout = domain.MaxSpinDuration + 5*time.Second
	DefaultMaxRetries     = 3
	DefaultRetryDelay     = 500 * time.Millisecond

	// HistoryPageSize is how many results /history shows
	HistoryPageSize = 10
)

// Friendly message constants for Discord responses
const (
	// Options
	MsgDuplicateOption   = "🔁 **Already on the wheel!**\nThat option is already there."
	MsgMaxOptions        = "🎡 **The wheel is full**\nRemove an option before adding another."
	MsgMinOptions        = "✋ **Can't remove that**\nThe wheel needs at least 2 options."
	MsgOptionNotFound    = "❓ **Option Not Found**\nMaybe check the spelling?"
	MsgSampleNotFound    = "❓ **Sample Not Found**\nUse `/options list` to see the wheel."
	MsgNotEnoughToSpin   = "🎡 **Not enough options**\nAdd at least 2 options to spin!"
	MsgAlreadySpinning   = "⏳ **Whoa there!**\nThe wheel is already spinning."
	MsgSpinCancelled     = "🛑 **Spin cancelled**\nSomeone reset the wheel."
	MsgServerUnavailable = "🔌 **Spinner unavailable**\nTry again in a moment."

	MsgGenericError   = "❌ Something went wrong."
	MsgMissingOption  = "❌ Missing required argument."
	MsgHistoryEmpty   = "No spins yet. Use `/spin` to get started!"
	MsgPong           = "Pong! 🏓"
	MsgPongAPIOffline = "Pong! 🏓 (spinner API is not responding)"
)

// Footer constants for standardized embed footers
const (
	FooterSpinner = "Decision Spinner"
)

// Embed colors
const (
	ColorSpin    = 0xF39C12
	ColorOptions = 0x3498DB
	ColorHistory = 0x9B59B6
	ColorSuccess = 0x2ECC71
)

// Log messages
const (
	LogMsgRetrying        = "Retrying API request"
	LogMsgRequestFailed   = "API request failed"
	LogMsgServerError     = "Server error, will retry"
	LogMsgActionFailed    = "Command action failed"
	LogMsgResponseFailed  = "Failed to send response"
	LogMsgDeferFailed     = "Failed to send deferred response"
	LogMsgEditFailed      = "Failed to edit interaction response"
	LogMsgUnknownCommand  = "Unknown command received"
	LogMsgUnknownSubcmd   = "Unknown subcommand received"
	LogMsgCommandsChecked = "Checking Discord commands..."
)

// ErrNoNotifyChannel means no notification channel is configured
var ErrNoNotifyChannel = errors.New("notification channel not configured")
