package root

import (
	"fmt"
	"strings"

	"shellgotchi/internal/tables"
	"shellgotchi/internal/ui"
)

// rewardText formats a reward bundle as a compact "+N icon" list.
func rewardText(r tables.Reward) string {
	var parts []string
	if r.Food > 0 {
		parts = append(parts, fmt.Sprintf("+%d%s", r.Food, ui.IconFood))
	}
	if r.Tickets > 0 {
		parts = append(parts, fmt.Sprintf("+%d%s", r.Tickets, ui.IconTicket))
	}
	if r.TicketFragments > 0 {
		parts = append(parts, fmt.Sprintf("+%d%s", r.TicketFragments, ui.IconFragment))
	}
	if r.Coins > 0 {
		parts = append(parts, fmt.Sprintf("+%d%s", r.Coins, ui.IconCoin))
	}
	if r.ExpBoost > 0 {
		parts = append(parts, fmt.Sprintf("+%d boost%s", r.ExpBoost, ui.IconSparkle))
	}
	if len(parts) == 0 {
		return ui.Muted.Render("(nothing)")
	}
	return strings.Join(parts, " ")
}
