package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// HistoryCommand returns the history command definition and handler
func HistoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "history",
		Description: "Show the most recent spin results",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			entries, err := client.GetHistory(HistoryPageSize)
			if err != nil {
				return nil, err
			}
			return historyEmbed(entries), nil
		})
	}

	return cmd, handler
}

func historyEmbed(entries []domain.HistoryEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return createEmbed("📜 Recent Results", MsgHistoryEmpty, ColorHistory, "")
	}
	var b strings.Builder
	for idx, e := range entries {
		// Discord renders <t:unix:R> as a relative time in the reader's locale
		fmt.Fprintf(&b, "%d. **%s** <t:%d:R> (%d options)\n", idx+1, e.Winner.Text, e.Timestamp.Unix(), e.TotalOptions)
	}
	return createEmbed("📜 Recent Results", b.String(), ColorHistory, "")
}
