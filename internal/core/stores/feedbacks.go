package stores

import (
	"context"
	"net/url"

	"sacco-desk/internal/adapters/rest"
	"sacco-desk/internal/core/domain"
)

// Feedbacks owns the feedback collection.
type Feedbacks struct {
	Resource[domain.Feedback]
	client *rest.Client
}

// NewFeedbacks creates the feedback store.
func NewFeedbacks(session *Session, client *rest.Client) *Feedbacks {
	f := &Feedbacks{client: client}
	f.init(session, API[domain.Feedback]{
		Fetch: func(ctx context.Context, token string, _ url.Values) ([]domain.Feedback, error) {
			return client.Feedbacks(ctx, token)
		},
	}, func(fb domain.Feedback) uint { return fb.ID })
	return f
}

// Fetch replaces the collection with every feedback entry.
func (f *Feedbacks) Fetch(ctx context.Context) error {
	return f.fetch(ctx, nil)
}

// Send files a new feedback entry and appends the created record.
func (f *Feedbacks) Send(ctx context.Context, subject, message string) (*domain.Feedback, error) {
	token := f.session.Token()
	created, err := f.client.SendFeedback(ctx, token, subject, message)
	if err != nil {
		return nil, err
	}
	f.append(*created)
	return created, nil
}

// Respond attaches a staff response to a feedback entry and merges the
// stored response into the cached record.
func (f *Feedbacks) Respond(ctx context.Context, id uint, responseText string) error {
	token := f.session.Token()
	stored, err := f.client.RespondToFeedback(ctx, token, id, responseText)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, fb := range f.items {
		if fb.ID == id {
			f.items[i].Response = stored
			return nil
		}
	}
	return nil
}
