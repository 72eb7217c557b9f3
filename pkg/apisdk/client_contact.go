package apisdk

import (
	"context"
	"fmt"
	"net/http"
)

// SubscribeNewsletter adds email to the waitlist. A duplicate email is
// reported as ErrAlreadySubscribed.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	err := c.doJSON(ctx, http.MethodPost, "/contact/newsletters", map[string]string{"email": email}, nil)
	if StatusCode(err) == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrAlreadySubscribed, Message(err))
	}
	return err
}

// SendContactMessage submits the public contact form.
func (c *Client) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	return c.doJSON(ctx, http.MethodPost, "/contact/messages", msg, nil)
}
