package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/siegecord/r6-bot-discord/internal/domain/duel"
)

// commandDefinitions builds the slash command catalog
func commandDefinitions() []*discordgo.ApplicationCommand {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 3)
	for _, c := range duel.Choices() {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  capitalize(c.Name),
			Value: c.Name,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "test",
			Description: "Basic command",
		},
		{
			Name:        "pickchallenge",
			Description: "Pick a random challenge from a list.",
		},
		{
			Name:        "randomsight",
			Description: "Pick a random sight for a zoom type.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Choose between normal, acog, or dmr",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Normal", Value: "normal"},
						{Name: "ACOG", Value: "acog"},
						{Name: "DMR", Value: "dmr"},
					},
				},
			},
		},
		{
			Name:        "pickoperator",
			Description: "Pick a random operator from either attack or defense.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Choose between Attack or Defense",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Attack", Value: "attack"},
						{Name: "Defense", Value: "defense"},
					},
				},
			},
		},
		{
			Name:        "r6stats",
			Description: "Get Rainbow Six Siege stats for a player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username",
					Description: "The username of the player",
					Required:    true,
				},
			},
		},
		{
			Name:        "r6statcompare",
			Description: "Compare Rainbow Six Siege stats between two players",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username1",
					Description: "The first username of the player",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username2",
					Description: "The second username of the player",
					Required:    true,
				},
			},
		},
		{
			Name:        "1v1",
			Description: "Compare stats between two players and determine the winner based on their KD and rank",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username1",
					Description: "The first username of the player",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "username2",
					Description: "The second username of the player",
					Required:    true,
				},
			},
		},
		{
			Name:        "challenge",
			Description: "Challenge to a match of rock paper scissors",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "object",
					Description: "Pick your object",
					Required:    true,
					Choices:     choices,
				},
			},
		},
	}
}

// RegisterCommands registers the slash command catalog for an
// application. Use an empty guildID for global commands.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	commands := commandDefinitions()

	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	log.Printf("Registered %d commands", len(registered))
	return nil
}

// RegisterCommands registers the slash command catalog. Use an empty
// guildID for global commands.
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	return RegisterCommands(s, h.appID, guildID)
}
