package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// SpinCommand returns the spin command definition and handler
func SpinCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "spin",
		Description: "Spin the decision wheel",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			result, err := client.Spin()
			if err != nil {
				return nil, err
			}
			return winnerEmbed(result.SpinResult, getInteractionUser(i).Username), nil
		})
	}

	return cmd, handler
}

// winnerEmbed renders a settled spin. spunBy may be empty.
func winnerEmbed(result domain.SpinResult, spunBy string) *discordgo.MessageEmbed {
	var b strings.Builder
	fmt.Fprintf(&b, "The wheel landed on **%s**!", result.Winner.Text)
	fmt.Fprintf(&b, "\n%d options on the wheel", result.TotalOptions)
	if spunBy != "" {
		fmt.Fprintf(&b, "\nSpun by %s", spunBy)
	}

	embed := createEmbed("🎡 We have a winner!", b.String(), embedColor(result.Winner.Color, ColorSpin), "")
	if !result.SettledAt.IsZero() {
		embed.Timestamp = result.SettledAt.UTC().Format(time.RFC3339)
	}
	return embed
}

// embedColor converts an option color like #FF6B6B, falling back to def
func embedColor(hex string, def int) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil || len(hex) != 7 {
		return def
	}
	return int(v)
}
