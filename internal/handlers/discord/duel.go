package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
	duelService "github.com/siegecord/r6-bot-discord/internal/services/duel"
)

func (h *Handler) handleChallenge(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	object, _ := stringOption(i.ApplicationCommandData(), "object")
	userID := interactionUserID(i)

	// The interaction id is the correlation key for the whole game
	_, err := h.ServiceProvider.DuelService.Challenge(ctx, &duelService.ChallengeInput{
		SessionID:    i.ID,
		ChallengerID: userID,
		Object:       object,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			h.respondEphemeral(s, i, "Pick a valid object to challenge with.")
			return
		}
		log.Printf("failed to create challenge session %s: %v", i.ID, err)
		h.respondEphemeral(s, i, "Couldn't start the challenge. Please try again.")
		return
	}

	h.respond(s, i, &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Rock paper scissors challenge from <@%s>", userID),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						CustomID: acceptButtonPrefix + i.ID,
						Label:    "Accept",
						Style:    discordgo.PrimaryButton,
					},
				},
			},
		},
	})
}

func (h *Handler) handleAcceptButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	options := make([]discordgo.SelectMenuOption, 0, 3)
	for _, choice := range h.ServiceProvider.DuelService.ShuffledChoices() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       capitalize(choice.Name),
			Value:       choice.Name,
			Description: choice.Description,
		})
	}

	// Reply first: if the delete below fails the responder still has
	// their prompt.
	h.respond(s, i, &discordgo.InteractionResponseData{
		Content: "What is your object of choice?",
		Flags:   discordgo.MessageFlagsEphemeral,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID: selectChoicePrefix + sessionID,
						Options:  options,
					},
				},
			},
		},
	})

	// Best-effort cleanup of the public challenge message
	if i.Message != nil {
		if err := s.WebhookMessageDelete(h.appID, i.Token, i.Message.ID); err != nil {
			log.Printf("failed to delete challenge message %s: %v", i.Message.ID, err)
		}
	}
}

func (h *Handler) handleSelectChoice(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 {
		h.ackSilently(s, i)
		return
	}

	outcome, err := h.ServiceProvider.DuelService.Resolve(ctx, &duelService.ResolveInput{
		SessionID:   sessionID,
		ResponderID: interactionUserID(i),
		Object:      data.Values[0],
	})
	if err != nil {
		// A stale or already-resolved session is a silent no-op;
		// anything else still must not leave the click hanging.
		if !apperrors.IsNotFound(err) {
			log.Printf("failed to resolve session %s: %v", sessionID, err)
		}
		h.ackSilently(s, i)
		return
	}

	h.respondContent(s, i, outcome.Message())

	// Best-effort: close out the ephemeral prompt so the select menu
	// can't be submitted again
	if i.Message != nil {
		content := "Nice choice " + h.randomEmoji()
		components := []discordgo.MessageComponent{}
		_, err := s.WebhookMessageEdit(h.appID, i.Token, i.Message.ID, &discordgo.WebhookEdit{
			Content:    &content,
			Components: &components,
		})
		if err != nil {
			log.Printf("failed to update choice prompt %s: %v", i.Message.ID, err)
		}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
