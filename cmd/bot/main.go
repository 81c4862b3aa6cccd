package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/siegecord/r6-bot-discord/internal/clients/tracker"
	"github.com/siegecord/r6-bot-discord/internal/config"
	"github.com/siegecord/r6-bot-discord/internal/handlers/discord"
	"github.com/siegecord/r6-bot-discord/internal/repositories/duels"
	"github.com/siegecord/r6-bot-discord/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Create tracker.gg client
	trackerClient, err := tracker.New(&tracker.Config{
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: cfg.Tracker.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker client: %v", err)
	}

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		TrackerClient: trackerClient,
		SessionTTL:    cfg.Game.SessionTTL,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Printf("Connecting to Redis at: %s", redisURL)

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory session store")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory session store")
			} else {
				defer cancel()
				log.Println("Successfully connected to Redis")

				providerConfig.DuelRepository = duels.NewRedisRepository(&duels.RedisRepoConfig{
					Client:     redisClient,
					SessionTTL: cfg.Game.SessionTTL,
				})

				log.Println("Using Redis for session storage")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory session store")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		AppID:           cfg.Discord.AppID,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	// Optionally serve the HTTP interactions endpoint. Discord sends
	// interactions over the gateway either way; the webhook endpoint is
	// for installs configured with an interactions endpoint URL.
	var httpServer *http.Server
	if cfg.Discord.PublicKey != "" {
		webhook, whErr := discord.NewWebhookHandler(&discord.WebhookConfig{
			PublicKey: cfg.Discord.PublicKey,
			Session:   dg,
			Handler:   handler,
		})
		if whErr != nil {
			log.Printf("Failed to create interactions endpoint: %v", whErr)
			return
		}

		mux := http.NewServeMux()
		mux.Handle("/interactions", webhook)

		httpServer = &http.Server{
			Addr:    ":" + cfg.Discord.Port,
			Handler: mux,
		}

		go func() {
			log.Printf("Listening for interactions on port %s", cfg.Discord.Port)
			if serveErr := httpServer.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
				log.Printf("Interactions endpoint stopped: %v", serveErr)
			}
		}()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down interactions endpoint: %v", err)
		}
		cancel()
	}

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
