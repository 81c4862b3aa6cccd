package discord

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	apperrors "github.com/siegecord/r6-bot-discord/internal/errors"
)

// WebhookConfig holds configuration for the HTTP interactions endpoint
type WebhookConfig struct {
	// PublicKey is the application's hex-encoded ed25519 key used to
	// verify interaction signatures
	PublicKey string

	// Session is used to answer interactions over the REST callback
	Session *discordgo.Session

	// Handler routes verified interactions
	Handler *Handler
}

// webhookHandler serves the interactions endpoint that Discord posts
// signed interaction payloads to
type webhookHandler struct {
	publicKey ed25519.PublicKey
	session   *discordgo.Session
	handler   *Handler
}

// NewWebhookHandler creates the interactions endpoint handler
func NewWebhookHandler(cfg *WebhookConfig) (http.Handler, error) {
	if cfg == nil || cfg.PublicKey == "" {
		return nil, apperrors.Validation("public key is required")
	}
	if cfg.Session == nil {
		return nil, apperrors.Validation("session is required")
	}
	if cfg.Handler == nil {
		return nil, apperrors.Validation("handler is required")
	}

	key, err := hex.DecodeString(cfg.PublicKey)
	if err != nil || len(key) != ed25519.PublicKeySize {
		return nil, apperrors.Validation("public key must be a hex-encoded ed25519 key")
	}

	return &webhookHandler{
		publicKey: ed25519.PublicKey(key),
		session:   cfg.Session,
		handler:   cfg.Handler,
	}, nil
}

// ServeHTTP implements http.Handler
func (w *webhookHandler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(rw, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !discordgo.VerifyInteraction(r, w.publicKey) {
		http.Error(rw, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		log.Printf("failed to decode interaction payload: %v", err)
		http.Error(rw, "bad request", http.StatusBadRequest)
		return
	}

	// Verification pings get answered inline; everything else goes
	// through the router, which responds over the REST callback.
	if interaction.Type == discordgo.InteractionPing {
		rw.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(rw).Encode(discordgo.InteractionResponse{
			Type: discordgo.InteractionResponsePong,
		}); err != nil {
			log.Printf("failed to write pong: %v", err)
		}
		return
	}

	w.handler.HandleInteraction(w.session, &discordgo.InteractionCreate{Interaction: &interaction})
	rw.WriteHeader(http.StatusAccepted)
}
