package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freelancenexus/nexus-go/src/dto"
	"github.com/freelancenexus/nexus-go/src/response"
	"github.com/freelancenexus/nexus-go/src/services"
	"github.com/freelancenexus/nexus-go/src/utils"
)

type PaymentHandler struct {
	svc *services.PaymentService
}

func NewPaymentHandler(svc *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// InitiatePayment godoc
// @Summary Initiate a UPI payment for a project
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Payment
// @Failure 400 {object} response.ErrorResponse "Invalid amount or UPI id"
// @Router /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var input dto.InitiatePaymentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.svc.InitiatePayment(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// VerifyPayment godoc
// @Summary Verify a payment with the gateway and settle it
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param txn path string true "Transaction ID"
// @Success 200 {object} dto.TransactionStatusDTO
// @Failure 404 {object} response.ErrorResponse "Payment not found"
// @Router /payments/verify/{txn} [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	status, err := h.svc.VerifyPayment(c.Param("txn"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetPaymentByTransaction godoc
// @Summary Get a payment by its transaction id
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param txn path string true "Transaction ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} response.ErrorResponse "Payment not found"
// @Router /payments/txn/{txn} [get]
func (h *PaymentHandler) GetPaymentByTransaction(c *gin.Context) {
	payment, err := h.svc.GetPaymentByTransactionID(c.Param("txn"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// PaymentCallback godoc
// @Summary Receive an asynchronous status callback from the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /payments/callback [post]
func (h *PaymentHandler) PaymentCallback(c *gin.Context) {
	var body struct {
		TransactionID string `json:"transaction_id" binding:"required"`
		Status        string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.ProcessCallback(body.TransactionID, body.Status))
}

// RefundPayment godoc
// @Summary Refund a completed payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path uint true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 400 {object} response.ErrorResponse "Payment not refundable"
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payment id"})
		return
	}
	var input dto.RefundRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.svc.RefundPayment(id, input.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPaymentByID godoc
// @Summary Get payment by ID
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} response.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payment id"})
		return
	}
	payment, err := h.svc.GetPayment(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPaymentsByProject godoc
// @Summary List payments of a project
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} models.Payment
// @Router /payments/by-project/{id} [get]
func (h *PaymentHandler) GetPaymentsByProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	payments, err := h.svc.GetPaymentsByProject(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetMyPayments godoc
// @Summary List payments where the caller is payer or payee
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Payment
// @Router /payments/mine [get]
func (h *PaymentHandler) GetMyPayments(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	payments, err := h.svc.GetUserPaymentHistory(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// GetTransactionHistory godoc
// @Summary List the transaction log of a payment
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path uint true "Payment ID"
// @Success 200 {array} models.PaymentHistory
// @Router /payments/{id}/history [get]
func (h *PaymentHandler) GetTransactionHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid payment id"})
		return
	}
	history, err := h.svc.GetTransactionHistory(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetMyTransactionHistory godoc
// @Summary List the caller's transaction log entries
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PaymentHistory
// @Router /payments/history/mine [get]
func (h *PaymentHandler) GetMyTransactionHistory(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	history, err := h.svc.GetUserTransactionHistory(userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// Health godoc
// @Summary Service liveness probe
// @Tags payments
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /health [get]
func (h *PaymentHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "ok"})
}
