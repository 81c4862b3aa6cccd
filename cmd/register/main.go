package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/siegecord/r6-bot-discord/internal/config"
	"github.com/siegecord/r6-bot-discord/internal/handlers/discord"
)

// Registers the slash command catalog and exits. Useful for deploys
// that keep command registration out of the bot's startup path.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Registration is a plain REST call, no gateway connection needed.
	if err := discord.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}
}
