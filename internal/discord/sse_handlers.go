package discord

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// SSENotifier posts stream events to the notification channel
type SSENotifier struct {
	send func(*discordgo.MessageEmbed) error
}

// NewSSENotifier creates a notifier that posts through the bot
func NewSSENotifier(bot *Bot) *SSENotifier {
	return &SSENotifier{send: bot.SendNotification}
}

// RegisterHandlers registers all SSE event handlers with the client
func (n *SSENotifier) RegisterHandlers(client *SSEClient) {
	client.OnEvent(SSEEventTypeSpinSettled, n.handleSpinSettled)
	client.OnEvent(SSEEventTypeHistoryCleared, n.handleHistoryCleared)
}

// EventTypes lists the types RegisterHandlers subscribes to
func (n *SSENotifier) EventTypes() []string {
	return []string{SSEEventTypeSpinSettled, SSEEventTypeHistoryCleared}
}

func (n *SSENotifier) handleSpinSettled(event SSEEvent) error {
	var payload domain.SpinSettledPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("failed to parse spin.settled payload: %w", err)
	}

	result := domain.SpinResult{
		SpinID:       payload.SpinID,
		Winner:       payload.Winner,
		WinnerIndex:  payload.WinnerIndex,
		FinalAngle:   payload.FinalAngle,
		TotalOptions: payload.TotalOptions,
		DurationMS:   payload.DurationMS,
	}
	if payload.Timestamp > 0 {
		result.SettledAt = time.Unix(payload.Timestamp, 0)
	}
	return n.notify(event, winnerEmbed(result, ""))
}

func (n *SSENotifier) handleHistoryCleared(event SSEEvent) error {
	return n.notify(event, createEmbed("🧹 History Cleared", "The spin history was cleared.", ColorHistory, ""))
}

func (n *SSENotifier) notify(event SSEEvent, embed *discordgo.MessageEmbed) error {
	if err := n.send(embed); err != nil {
		slog.Error(sseLogMsgNotificationError, "event_type", event.Type, "error", err)
		return err
	}
	slog.Info(sseLogMsgNotificationSent, "event_type", event.Type, "event_id", event.ID)
	return nil
}
