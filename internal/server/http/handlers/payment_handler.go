package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/spinzone/backend/internal/domain/errors"
	"github.com/spinzone/backend/internal/domain/model"
	"github.com/spinzone/backend/internal/server/http/dto"
	"github.com/spinzone/backend/internal/usecase"
)

// PaymentHandler manages payment orchestration endpoints. Business outcomes
// (including declined payments) are HTTP 200 with success=false; 4xx/5xx are
// reserved for malformed requests and infrastructure failure.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Initiate handles POST /api/payment/initiate.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req dto.InitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	items := make([]model.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	// An authenticated session wins over whatever the client put in the body.
	userID := req.UserID
	if id := CurrentUserID(c); id != nil {
		userID = id
	}

	redirect, err := h.facade.InitiatePayment(c.Request.Context(), usecase.InitiateParams{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		ReturnURL: req.ReturnURL,
		Items:     items,
		UserID:    userID,
	})
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing or invalid transaction data"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to initiate transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.InitiateResponse{Success: true, URL: redirect.URL, Token: redirect.Token})
}

// Confirm handles POST /api/payment/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	result, err := h.facade.ConfirmPayment(c.Request.Context(), req.Token)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "token not provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to confirm transaction"})
		return
	}

	c.JSON(http.StatusOK, toConfirmResponse(result))
}

// Aborted handles POST /api/payment/aborted.
func (h *PaymentHandler) Aborted(c *gin.Context) {
	var req dto.AbortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	notice, err := h.facade.PaymentAborted(c.Request.Context(), req.Token, req.OrderCode, req.SessionID)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "insufficient parameters"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to handle aborted transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{
		Error:     "transaction cancelled by user",
		OrderCode: notice.OrderCode,
		SessionID: notice.SessionID,
	})
}

// Timeout handles POST /api/payment/timeout.
func (h *PaymentHandler) Timeout(c *gin.Context) {
	var req dto.TimeoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	notice, err := h.facade.PaymentTimeout(c.Request.Context(), req.SessionID, req.OrderCode)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "insufficient parameters"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to handle timeout"})
		return
	}

	c.JSON(http.StatusOK, dto.CancellationResponse{
		Error:     "transaction session timed out",
		OrderCode: notice.OrderCode,
		SessionID: notice.SessionID,
	})
}

func isValidationError(err error) bool {
	return errors.Is(err, domainErrors.ErrMissingField) ||
		errors.Is(err, domainErrors.ErrInvalidAmount) ||
		errors.Is(err, domainErrors.ErrInvalidBuyOrder)
}

func toConfirmResponse(result *model.ConfirmResult) dto.ConfirmResponse {
	resp := dto.ConfirmResponse{
		Success: result.Success,
		Message: result.Message,
		OrderID: result.OrderID,
	}
	if result.Transaction != nil {
		resp.Transaction = &dto.TransactionPayload{
			Token:    result.Transaction.Token,
			BuyOrder: result.Transaction.BuyOrder,
			Amount:   result.Transaction.Amount,
			Status:   string(result.Transaction.Status),
		}
	}
	for _, issue := range result.Reconciliation {
		resp.Reconciliation = append(resp.Reconciliation, dto.ReconciliationIssue{
			Step:   issue.Step,
			Reason: issue.Reason,
		})
	}
	return resp
}
