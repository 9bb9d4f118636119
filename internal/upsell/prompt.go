package upsell

import (
	"fmt"
	"strings"

	"dinepos/internal/menu"
)

// CartItem is what the prompt needs to know about the current order.
type CartItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// BuildUpsellPrompt renders the suggestion request: the current
// order (may be empty), the catalog reduced to name/price/category,
// and the strict JSON output contract.
func BuildUpsellPrompt(cart []CartItem, catalog []menu.MenuItem) string {

	orderContext := "No items in current order"
	if len(cart) > 0 {
		names := make([]string, len(cart))
		for i, it := range cart {
			names[i] = it.Name
		}
		orderContext = "Current order contains: " + strings.Join(names, ", ")
	}

	entries := make([]string, len(catalog))
	for i, it := range catalog {
		entries[i] = fmt.Sprintf("%s (₹%g, %s)", it.Name, it.Price, it.Category)
	}
	menuContext := "Available menu items: " + strings.Join(entries, ", ")

	return fmt.Sprintf(`You are a restaurant upselling AI assistant. %s. %s.

Suggest 2-3 menu items that would pair well with the current order or boost order value.
For each suggestion, provide:
- item_name: exact name from the menu
- reason: brief compelling reason (max 15 words)
- confidence: number between 70-95

Respond ONLY with valid JSON array format:
[{"item_name": "...", "reason": "...", "confidence": 85}]`,
		orderContext,
		menuContext,
	)
}
