package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/dto"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/adapter/http/middleware"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/domain"
	"github.com/idyweb/Wallet-Service-with-Paystack/internal/core/ports"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/apperror"
	"github.com/idyweb/Wallet-Service-with-Paystack/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderPaystackSignature carries the HMAC-SHA512 digest of the raw webhook body.
const HeaderPaystackSignature = "x-paystack-signature"

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	depositSvc  ports.DepositService
	transferSvc ports.TransferService
	walletSvc   ports.WalletService
	ingestSvc   ports.WebhookIngestService
	sigSvc      ports.WebhookSignatureService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(
	depositSvc ports.DepositService,
	transferSvc ports.TransferService,
	walletSvc ports.WalletService,
	ingestSvc ports.WebhookIngestService,
	sigSvc ports.WebhookSignatureService,
) *WalletHandler {
	return &WalletHandler{
		depositSvc:  depositSvc,
		transferSvc: transferSvc,
		walletSvc:   walletSvc,
		ingestSvc:   ingestSvc,
		sigSvc:      sigSvc,
	}
}

// InitiateDeposit handles POST /wallet/deposit.
func (h *WalletHandler) InitiateDeposit(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	intent, err := h.depositSvc.InitiateDeposit(c.Request.Context(), principal, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.DepositResponse{
		Reference:        intent.Reference,
		AuthorizationURL: intent.AuthorizationURL,
		AccessCode:       intent.AccessCode,
		Amount:           intent.Amount,
	})
}

// Transfer handles POST /wallet/transfer.
func (h *WalletHandler) Transfer(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.transferSvc.Transfer(c.Request.Context(), principal, ports.TransferRequest{
		RecipientWalletNumber: req.WalletNumber,
		Amount:                req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.TransferResponse{
		Reference:       result.Reference,
		Amount:          result.Amount,
		RecipientWallet: result.RecipientWallet,
		NewBalance:      result.NewBalance,
	})
}

// GetBalance handles GET /wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	wallet, err := h.walletSvc.GetBalance(c.Request.Context(), principal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletResponse{
		WalletNumber: wallet.WalletNumber,
		Balance:      wallet.Balance,
		Currency:     wallet.Currency,
	})
}

// ListTransactions handles GET /wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	txns, err := h.walletSvc.ListTransactions(c.Request.Context(), principal, limit, offset)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}

	response.OK(c, dto.TransactionListResponse{
		Items:  items,
		Count:  len(items),
		Limit:  limit,
		Offset: offset,
	})
}

// DepositStatus handles GET /wallet/deposit/:reference/status.
func (h *WalletHandler) DepositStatus(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		response.Error(c, apperror.ErrAuthenticationRequired())
		return
	}

	var uri dto.DepositStatusURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	status, err := h.depositSvc.CheckStatus(c.Request.Context(), principal, uri.Reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DepositStatusResponse{
		Reference:     status.Reference,
		Amount:        status.Amount,
		Status:        string(status.Status),
		GatewayStatus: status.GatewayStatus,
		CreatedAt:     status.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// PaystackWebhook handles POST /wallet/paystack/webhook. The signature is
// checked against the exact raw body bytes before anything is parsed. Once
// it passes, the provider always gets a 2xx ack for business outcomes;
// only infrastructure failures surface as 5xx so Paystack redelivers.
func (h *WalletHandler) PaystackWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("cannot read request body"))
		return
	}

	signature := c.GetHeader(HeaderPaystackSignature)
	if signature == "" {
		response.Error(c, apperror.ErrMissingSignature())
		return
	}
	if !h.sigSvc.Verify(body, signature) {
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	headers, _ := json.Marshal(c.Request.Header)
	if err := h.ingestSvc.Ingest(c.Request.Context(), "paystack", body, headers); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}

// toTransactionResponse converts domain.Transaction to DTO.
func toTransactionResponse(tx *domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		ID:        tx.ID.String(),
		Reference: tx.Reference,
		Type:      string(tx.Type),
		Direction: string(tx.Direction),
		Amount:    tx.Amount,
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt.UTC().Format(time.RFC3339),
	}
	if cp := counterparty(tx); cp != "" {
		resp.Counterparty = &cp
	}
	if tx.RelatedTransactionID != nil {
		s := tx.RelatedTransactionID.String()
		resp.RelatedTransactionID = &s
	}
	if tx.SettledAt != nil {
		s := tx.SettledAt.UTC().Format(time.RFC3339)
		resp.SettledAt = &s
	}
	return resp
}

// counterparty names the other wallet of a transfer leg.
func counterparty(tx *domain.Transaction) string {
	if tx.Type != domain.TransactionTypeTransfer || tx.Metadata == nil {
		return ""
	}
	if tx.Direction == domain.DirectionDebit {
		return tx.Metadata.RecipientWallet
	}
	return tx.Metadata.SenderWallet
}
