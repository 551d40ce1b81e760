package stores

import (
	"context"
	"net/url"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
)

// Meetings owns the meeting schedule collection.
type Meetings struct {
	Resource[domain.Meeting]
	client *rest.Client
}

// NewMeetings creates the meeting store.
func NewMeetings(session *Session, client *rest.Client) *Meetings {
	m := &Meetings{client: client}
	m.init(session, API[domain.Meeting]{
		Fetch: func(ctx context.Context, token string, _ url.Values) ([]domain.Meeting, error) {
			return client.Meetings(ctx, token)
		},
	}, func(mt domain.Meeting) uint { return mt.ID })
	return m
}

// Fetch replaces the collection with the full meeting schedule.
func (m *Meetings) Fetch(ctx context.Context) error {
	return m.fetch(ctx, nil)
}

// Add schedules a meeting and appends the created record.
func (m *Meetings) Add(ctx context.Context, payload map[string]interface{}) (*domain.Meeting, error) {
	token := m.session.Token()
	created, err := m.client.CreateMeeting(ctx, token, payload)
	if err != nil {
		return nil, err
	}
	m.append(*created)
	return created, nil
}
