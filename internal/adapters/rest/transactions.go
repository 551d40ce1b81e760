package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"sacco-desk/internal/core/domain"
)

// Transactions fetches the transaction collection narrowed by the given
// query parameters (already cleaned of sentinel values).
func (c *Client) Transactions(ctx context.Context, token string, query url.Values) ([]domain.Transaction, error) {
	var result struct {
		Data []domain.Transaction `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/transactions", token, query, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ProcessTransaction requests a status transition and returns the server's
// updated copy of the record. Status and balances are server-computed, so
// the returned record is authoritative.
func (c *Client) ProcessTransaction(ctx context.Context, token string, id uint, action string) (*domain.Transaction, error) {
	body := map[string]string{"action": action}
	var result struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	path := fmt.Sprintf("/transactions/%d/process", id)
	if err := c.do(ctx, http.MethodPost, path, token, nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Transaction, nil
}

// SubmitMoneyRequest files a deposit, withdrawal, loan application or loan
// repayment as a multipart form. The receipt attachment is optional.
func (c *Client) SubmitMoneyRequest(ctx context.Context, token string, req domain.MoneyRequest) (*domain.Transaction, error) {
	var path string
	switch req.Type {
	case domain.TxDeposit:
		path = "/deposit"
	case domain.TxWithdrawal:
		path = "/withdraw"
	case domain.TxLoan:
		path = "/apply-loan"
	case domain.TxLoanRepayment:
		path = "/loan"
	default:
		return nil, fmt.Errorf("%w: unknown request type %q", domain.ErrInvalidInput, req.Type)
	}

	fields := map[string]string{
		"amount": strconv.FormatFloat(req.Amount, 'f', -1, 64),
	}
	if req.Reason != "" {
		fields["reason"] = req.Reason
	}

	var result struct {
		Transaction domain.Transaction `json:"transaction"`
	}
	err := c.upload(ctx, path, token, fields, receiptField(req), req.ReceiptName, req.Receipt, &result)
	if err != nil {
		return nil, err
	}
	return &result.Transaction, nil
}

func receiptField(req domain.MoneyRequest) string {
	if len(req.Receipt) == 0 {
		return ""
	}
	return "receipt"
}
