package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shell-Gotchi theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPet      = "🐾"
	IconFood     = "🍖"
	IconTicket   = "🎫"
	IconFragment = "🧩"
	IconCoin     = "🪙"
	IconSparkle  = "✨"
	IconGacha    = "🎰"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconCalendar = "📅"
	IconShop     = "🏪"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconBox      = "📦"
	IconStar     = "⭐"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeNew     = lipgloss.NewStyle().Bold(true).Foreground(cAccent).Render("NEW")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a fill gauge like "███████░░░  70%".
func Bar(current, max float64, width int) string {
	if width < 1 {
		width = 10
	}
	if max <= 0 {
		max = 1
	}
	ratio := current / max
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, ratio*100)
}

// RarityText colors a gacha rarity label.
func RarityText(rarity string) string {
	switch rarity {
	case "SSR":
		return Gold.Render("SSR")
	case "SR":
		return Title.Render("SR")
	default:
		return Muted.Render(rarity)
	}
}
