package rest

import (
	"context"
	"fmt"
	"net/http"

	"sacco-desk/internal/core/domain"
)

// Feedbacks fetches every feedback entry.
func (c *Client) Feedbacks(ctx context.Context, token string) ([]domain.Feedback, error) {
	var result struct {
		Feedbacks []domain.Feedback `json:"feedbacks"`
	}
	if err := c.do(ctx, http.MethodGet, "/feedbacks", token, nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Feedbacks, nil
}

// SendFeedback files a new feedback entry (customer operation).
func (c *Client) SendFeedback(ctx context.Context, token, subject, message string) (*domain.Feedback, error) {
	body := map[string]string{"subject": subject, "message": message}
	var result struct {
		Feedback domain.Feedback `json:"feedback"`
	}
	if err := c.do(ctx, http.MethodPost, "/feedback", token, nil, body, &result); err != nil {
		return nil, err
	}
	return &result.Feedback, nil
}

// RespondToFeedback attaches a staff response to a feedback entry and
// returns the stored response text.
func (c *Client) RespondToFeedback(ctx context.Context, token string, id uint, responseText string) (string, error) {
	body := map[string]string{"response": responseText}
	var result struct {
		Response string `json:"response"`
	}
	path := fmt.Sprintf("/feedback/%d/respond", id)
	if err := c.do(ctx, http.MethodPut, path, token, nil, body, &result); err != nil {
		return "", err
	}
	return result.Response, nil
}
