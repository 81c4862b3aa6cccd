package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var emojis = []string{
	"😭", "😄", "😌", "🤓", "😎", "😤", "🤖", "😶‍🌫️", "🌏", "📸", "💿", "👋", "🌊", "✨",
}

func (h *Handler) randomEmoji() string {
	return emojis[h.roller.Intn(len(emojis))]
}

func (h *Handler) handleTest(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.respondContent(s, i, fmt.Sprintf("bye world %s", h.randomEmoji()))
}

func (h *Handler) handlePickChallenge(s *discordgo.Session, i *discordgo.InteractionCreate) {
	challenge := h.ServiceProvider.LoadoutService.PickChallenge()
	h.respondContent(s, i, fmt.Sprintf("Your challenge is: **%s**", challenge))
}

func (h *Handler) handleRandomSight(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sightType, _ := stringOption(i.ApplicationCommandData(), "type")

	sight, err := h.ServiceProvider.LoadoutService.PickSight(sightType)
	if err != nil {
		h.respondContent(s, i, `Invalid type. Please choose between "normal", "acog", or "dmr".`)
		return
	}

	h.respondContent(s, i, fmt.Sprintf("Your random sight for %s is: **%s**", strings.ToUpper(sightType), sight))
}

func (h *Handler) handlePickOperator(s *discordgo.Session, i *discordgo.InteractionCreate) {
	category, _ := stringOption(i.ApplicationCommandData(), "category")

	operator, err := h.ServiceProvider.LoadoutService.PickOperator(category)
	if err != nil {
		h.respondContent(s, i, `Invalid category. Please choose either "attack" or "defense".`)
		return
	}

	h.respondContent(s, i, fmt.Sprintf("You picked **%s** from the %s category!", operator, category))
}
