package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	"github.com/siegecord/r6-bot-discord/internal/rng"
	"github.com/siegecord/r6-bot-discord/internal/services"
)

// Component custom-id prefixes. The session id is appended so the
// follow-up interactions carry their own correlation key.
const (
	acceptButtonPrefix = "accept_button_"
	selectChoicePrefix = "select_choice_"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	appID  string
	roller rng.Roller
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	AppID           string
	Roller          rng.Roller // Optional, will use default if nil
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}
	if cfg.AppID == "" {
		panic("app id is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.NewRandomRoller()
	}

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		appID:           cfg.AppID,
		roller:          roller,
	}
}

// HandleInteraction routes an incoming interaction to the right
// handler. Every branch produces exactly one primary response; some
// branches additionally fire one best-effort follow-up.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(ctx, s, i)
	default:
		log.Printf("unknown interaction type: %d", i.Type)
		h.respondEphemeral(s, i, "Sorry, I don't know how to handle that interaction.")
	}
}

func (h *Handler) handleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "test":
		h.handleTest(s, i)
	case "pickchallenge":
		h.handlePickChallenge(s, i)
	case "randomsight":
		h.handleRandomSight(s, i)
	case "pickoperator":
		h.handlePickOperator(s, i)
	case "r6stats":
		h.handleR6Stats(ctx, s, i)
	case "r6statcompare":
		h.handleStatCompare(ctx, s, i)
	case "1v1":
		h.handleOneVsOne(ctx, s, i)
	case "challenge":
		h.handleChallenge(ctx, s, i)
	default:
		log.Printf("unknown command: %s", data.Name)
		h.respondEphemeral(s, i, "Unknown command. Try /test to check I'm alive.")
	}
}

func (h *Handler) handleComponent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, acceptButtonPrefix):
		h.handleAcceptButton(s, i, strings.TrimPrefix(customID, acceptButtonPrefix))
	case strings.HasPrefix(customID, selectChoicePrefix):
		h.handleSelectChoice(ctx, s, i, strings.TrimPrefix(customID, selectChoicePrefix))
	default:
		log.Printf("unknown component: %s", customID)
		h.respondEphemeral(s, i, "Sorry, I don't recognize that button.")
	}
}

// interactionUserID returns the acting user's id. It lives in Member
// for guild interactions and in User for DMs.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// stringOption returns the named string option value, if present
func stringOption(data discordgo.ApplicationCommandInteractionData, name string) (string, bool) {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue(), true
		}
	}
	return "", false
}

func (h *Handler) respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("failed to respond to interaction %s: %v", i.ID, err)
	}
}

func (h *Handler) respondContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	h.respond(s, i, &discordgo.InteractionResponseData{Content: content})
}

func (h *Handler) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	h.respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// ackSilently acknowledges a component interaction without any visible
// change. Used for stale session references.
func (h *Handler) ackSilently(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("failed to ack interaction %s: %v", i.ID, err)
	}
}

// statsErrorMessage maps a stats fetch failure to its fixed
// user-facing message
func statsErrorMessage(err error) string {
	switch apperrors.GetCode(err) {
	case apperrors.CodeNotFound:
		return "Username not found. Please check the username."
	case apperrors.CodeRateLimited:
		return "Rate limited. Please wait before trying again."
	default:
		return "Unexpected error fetching stats. Please try again later."
	}
}
