package rest

import (
	"context"
	"net/http"

	"sacco-desk/internal/core/domain"
)

// Meetings fetches every scheduled meeting.
func (c *Client) Meetings(ctx context.Context, token string) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := c.do(ctx, http.MethodGet, "/meetings", token, nil, nil, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}

// CreateMeeting schedules a meeting and returns the created record.
func (c *Client) CreateMeeting(ctx context.Context, token string, payload map[string]interface{}) (*domain.Meeting, error) {
	var meeting domain.Meeting
	if err := c.do(ctx, http.MethodPost, "/meetings", token, nil, payload, &meeting); err != nil {
		return nil, err
	}
	return &meeting, nil
}
