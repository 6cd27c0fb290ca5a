package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Webhook represents a registered callback on a Trello model. Trello POSTs
// to CallbackURL whenever the watched model changes.
type Webhook struct {
	ID               string `json:"id"`
	Description      string `json:"description"`
	IDModel          string `json:"idModel"`
	CallbackURL      string `json:"callbackURL"`
	Active           bool   `json:"active"`
	ConsecutiveFails int    `json:"consecutiveFailures"`
}

// WebhookUpdate holds the mutable webhook attributes for UpdateWebhook.
// Zero-value fields are left unchanged.
type WebhookUpdate struct {
	Description string
	CallbackURL string
	IDModel     string
	Active      *bool
}

// AddWebhook registers a webhook watching the given model (a board, list,
// card, or member ID).
func (c *Client) AddWebhook(ctx context.Context, description, callbackURL, modelID string) (*Webhook, error) {
	args := NewArguments().
		Set("description", description).
		Set("callbackURL", callbackURL).
		Set("idModel", modelID)

	var webhook Webhook
	if err := c.post(ctx, "/1/webhooks", args, &webhook); err != nil {
		return nil, errors.Wrapf(err, "failed to add webhook for model %s", modelID)
	}

	return &webhook, nil
}

// GetWebhook retrieves a webhook by ID.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	var webhook Webhook
	if err := c.get(ctx, "/1/webhooks/"+webhookID, nil, &webhook); err != nil {
		return nil, errors.Wrapf(err, "failed to get webhook %s", webhookID)
	}

	return &webhook, nil
}

// UpdateWebhook rewrites a webhook's attributes. Only the fields set in
// update are sent.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, update WebhookUpdate) (*Webhook, error) {
	args := NewArguments()
	if update.Description != "" {
		args.Set("description", update.Description)
	}
	if update.CallbackURL != "" {
		args.Set("callbackURL", update.CallbackURL)
	}
	if update.IDModel != "" {
		args.Set("idModel", update.IDModel)
	}
	if update.Active != nil {
		args.Set("active", *update.Active)
	}

	var webhook Webhook
	if err := c.put(ctx, "/1/webhooks/"+webhookID, args, &webhook); err != nil {
		return nil, errors.Wrapf(err, "failed to update webhook %s", webhookID)
	}

	return &webhook, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := c.delete(ctx, "/1/webhooks/"+webhookID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete webhook %s", webhookID)
	}

	return nil
}

// GetWebhooksForToken lists every webhook registered under the client's
// token.
func (c *Client) GetWebhooksForToken(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := c.get(ctx, "/1/tokens/"+c.token+"/webhooks", nil, &webhooks); err != nil {
		return nil, errors.Wrap(err, "failed to get webhooks for token")
	}

	return webhooks, nil
}
