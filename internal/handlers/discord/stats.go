package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

func (h *Handler) handleR6Stats(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	username, ok := stringOption(i.ApplicationCommandData(), "username")
	if !ok || username == "" {
		h.respondContent(s, i, "Please provide a valid username.")
		return
	}

	record, err := h.ServiceProvider.StatsService.Lookup(ctx, username)
	if err != nil {
		h.respondContent(s, i, statsErrorMessage(err))
		return
	}

	lines := []string{
		fmt.Sprintf("**R6 Stats for %s:**", username),
		fmt.Sprintf("**Lifetime K/D:** %s", record.LifetimeKD.Format(2)),
		fmt.Sprintf("**Current K/D:** %s", record.CurrentKD.Format(2)),
		fmt.Sprintf("**Max Rank Points:** %s", record.MaxRank.Format(0)),
		fmt.Sprintf("**Current Rank Points:** %s", record.CurrentRank.Format(0)),
	}

	h.respondContent(s, i, strings.Join(lines, "\n"))
}

func (h *Handler) handleStatCompare(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	username1, ok1 := stringOption(data, "username1")
	username2, ok2 := stringOption(data, "username2")
	if !ok1 || !ok2 || username1 == "" || username2 == "" {
		h.respondContent(s, i, "Please provide two valid usernames.")
		return
	}

	comparison, err := h.ServiceProvider.StatsService.Compare(ctx, username1, username2)
	if err != nil {
		h.respondContent(s, i, statsErrorMessage(err))
		return
	}

	lines := []string{
		fmt.Sprintf("**Comparison of %s vs %s:**", username1, username2),
	}
	for _, metric := range comparison.Metrics {
		lines = append(lines, fmt.Sprintf("**%s:** %s", metric.Name, metric.Text))
	}

	h.respondContent(s, i, strings.Join(lines, "\n"))
}

func (h *Handler) handleOneVsOne(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	username1, ok1 := stringOption(data, "username1")
	username2, ok2 := stringOption(data, "username2")
	if !ok1 || !ok2 || username1 == "" || username2 == "" {
		h.respondContent(s, i, "Please provide two valid usernames.")
		return
	}

	result, err := h.ServiceProvider.StatsService.Duel(ctx, username1, username2)
	if err != nil {
		h.respondContent(s, i, statsErrorMessage(err))
		return
	}

	lines := []string{
		fmt.Sprintf("**Winner:** %s", result.Winner),
		"**1v1 Match Result:**",
		fmt.Sprintf("**%s K/D:** %s | **Max Rank:** %s",
			result.Username1, result.Stats1.CurrentKD.Format(2), result.Stats1.MaxRank.Format(0)),
		fmt.Sprintf("**%s K/D:** %s | **Max Rank:** %s",
			result.Username2, result.Stats2.CurrentKD.Format(2), result.Stats2.MaxRank.Format(0)),
		"**Chance of Winning:**",
		fmt.Sprintf("%s: %.2f%%", result.Username1, result.Percent1),
		fmt.Sprintf("%s: %.2f%%", result.Username2, result.Percent2),
		fmt.Sprintf("The random number was: %.2f", result.Draw),
	}

	h.respondContent(s, i, strings.Join(lines, "\n"))
}
