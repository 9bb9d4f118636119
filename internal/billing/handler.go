package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /bills
// --------------------------------------------------
func (h *Handler) CreateBill(c *gin.Context) {
	var req struct {
		Table string      `json:"table"`
		Items []OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bill, err := h.service.CreateBill(c.Request.Context(), req.Table, req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// --------------------------------------------------
// GET /bills/:id
// --------------------------------------------------
func (h *Handler) GetBill(c *gin.Context) {
	bill, err := h.service.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// --------------------------------------------------
// PATCH /bills/:id — tip, discount, payment method
// --------------------------------------------------
func (h *Handler) UpdateBill(c *gin.Context) {
	var req struct {
		TipPercent    *float64 `json:"tip_percent"`
		Discount      *float64 `json:"discount"`
		PaymentMethod *string  `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	orderID := c.Param("id")

	var (
		bill *Bill
		err  error
	)

	if req.TipPercent != nil {
		if bill, err = h.service.SetTip(ctx, orderID, *req.TipPercent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.Discount != nil {
		if bill, err = h.service.SetDiscount(ctx, orderID, *req.Discount); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if req.PaymentMethod != nil {
		if bill, err = h.service.SetPaymentMethod(ctx, orderID, *req.PaymentMethod); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if bill == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to update"})
		return
	}

	c.JSON(http.StatusOK, bill)
}

// --------------------------------------------------
// POST /bills/:id/pay
// --------------------------------------------------
func (h *Handler) Pay(c *gin.Context) {
	bill, err := h.service.ProcessPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "payment successful",
		"bill":    bill,
	})
}

// --------------------------------------------------
// POST /bills/:id/print
// --------------------------------------------------
func (h *Handler) Print(c *gin.Context) {
	bill, err := h.service.PrintBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "bill sent to printer",
		"order_id": bill.OrderID,
	})
}

// --------------------------------------------------
// POST /bills/:id/receipt
// --------------------------------------------------
func (h *Handler) SendReceipt(c *gin.Context) {
	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SendReceipt(c.Request.Context(), c.Param("id"), req.Phone); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "receipt sent"})
}
