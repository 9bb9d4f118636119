package upsell

import (
	"net/http"

	"dinepos/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *Engine
	menus  *menu.Service
}

func NewHandler(engine *Engine, menus *menu.Service) *Handler {
	return &Handler{engine: engine, menus: menus}
}

// --------------------------------------------------
// GET /suggestions
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"suggestions": h.engine.Suggestions(),
	})
}

// --------------------------------------------------
// POST /suggestions/refresh — explicit retry
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	var req struct {
		CurrentOrderItems []CartItem `json:"current_order_items"`
	}
	// body is optional; an empty cart is a valid request
	_ = c.ShouldBindJSON(&req)

	catalog, err := h.menus.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu items"})
		return
	}

	suggestions := h.engine.Refresh(c.Request.Context(), req.CurrentOrderItems, catalog)

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
	})
}
