package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
	"github.com/osse101/DecisionSpinner_Go/internal/handler"
)

// Subcommands of /options
const (
	SubcmdList   = "list"
	SubcmdAdd    = "add"
	SubcmdRemove = "remove"
	SubcmdSample = "sample"
)

// OptionsCommand returns the options command definition and handler
func OptionsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "options",
		Description: "View or change the options on the wheel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcmdList,
				Description: "Show the options on the wheel",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcmdAdd,
				Description: "Add an option to the wheel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "Option text",
						Required:    true,
						MaxLength:   domain.MaxOptionTextLength,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcmdRemove,
				Description: "Remove an option from the wheel",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "Option text to remove",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        SubcmdSample,
				Description: "Load a sample set, or list them when no name is given",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Sample set name",
						Required:    false,
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := getOptions(i)
		if len(opts) == 0 {
			if !deferResponse(s, i) {
				return
			}
			respondError(s, i, MsgMissingOption)
			return
		}

		sub := opts[0]
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			switch sub.Name {
			case SubcmdList:
				list, err := client.GetOptions()
				if err != nil {
					return nil, err
				}
				return optionsEmbed("🎡 Wheel Options", list), nil

			case SubcmdAdd:
				text, _ := optionValue(sub.Options, "text")
				opt, err := client.AddOption(text)
				if err != nil {
					return nil, err
				}
				return createEmbed("✅ Option Added", fmt.Sprintf("Added **%s** to the wheel.", opt.Text),
					embedColor(opt.Color, ColorSuccess), ""), nil

			case SubcmdRemove:
				text, _ := optionValue(sub.Options, "text")
				removed, err := removeByText(client, text)
				if err != nil {
					return nil, err
				}
				return createEmbed("🗑️ Option Removed", fmt.Sprintf("Removed **%s** from the wheel.", removed),
					ColorSuccess, ""), nil

			case SubcmdSample:
				name, ok := optionValue(sub.Options, "name")
				if !ok || strings.TrimSpace(name) == "" {
					samples, err := client.GetSamples()
					if err != nil {
						return nil, err
					}
					return createEmbed("📚 Sample Sets", "`"+strings.Join(samples, "`, `")+"`", ColorOptions, ""), nil
				}
				list, err := client.LoadSample(strings.TrimSpace(name))
				if err != nil {
					return nil, err
				}
				return optionsEmbed(fmt.Sprintf("📚 Loaded %s", name), list), nil

			default:
				slog.Warn(LogMsgUnknownSubcmd, "command", "options", "subcommand", sub.Name)
				return nil, errors.New("unknown subcommand")
			}
		})
	}

	return cmd, handler
}

// removeByText resolves text to an option id using the wheel's duplicate
// rules, then removes it. It returns the removed option's text.
func removeByText(client *APIClient, text string) (string, error) {
	list, err := client.GetOptions()
	if err != nil {
		return "", err
	}
	key := domain.OptionKey(text)
	for _, o := range list {
		if domain.OptionKey(o.Text) == key {
			if err := client.RemoveOption(o.ID); err != nil {
				return "", err
			}
			return o.Text, nil
		}
	}
	return "", &APIError{Status: http.StatusNotFound, Message: handler.ErrMsgOptionNotFoundError}
}

func optionsEmbed(title string, list []domain.Option) *discordgo.MessageEmbed {
	if len(list) == 0 {
		return createEmbed(title, "The wheel is empty. Use `/options add` to add options.", ColorOptions, "")
	}
	var b strings.Builder
	for idx, o := range list {
		fmt.Fprintf(&b, "%d. %s", idx+1, o.Text)
		if o.Weight > 0 && o.Weight != domain.DefaultOptionWeight {
			fmt.Fprintf(&b, " (×%g)", o.Weight)
		}
		b.WriteByte('\n')
	}
	embed := createEmbed(title, b.String(), ColorOptions, "")
	embed.Footer.Text = fmt.Sprintf("%s • %d/%d options", FooterSpinner, len(list), domain.MaxOptions)
	return embed
}
