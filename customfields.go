package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// CustomField represents a custom field definition attached to a board.
// Type is one of "text", "number", "date", "checkbox", or "list".
type CustomField struct {
	ID      string              `json:"id"`
	IDModel string              `json:"idModel"`
	Name    string              `json:"name"`
	Type    string              `json:"type"`
	Pos     float64             `json:"pos"`
	Options []CustomFieldOption `json:"options,omitempty"`
}

// CustomFieldOption is one selectable value of a "list" custom field.
type CustomFieldOption struct {
	ID            string            `json:"id"`
	IDCustomField string            `json:"idCustomField"`
	Value         map[string]string `json:"value"`
	Color         string            `json:"color"`
	Pos           float64           `json:"pos"`
}

// CustomFieldValue is the typed value written to a card's custom field.
// Exactly one field should be set, matching the field's declared type.
type CustomFieldValue struct {
	Text    string `json:"text,omitempty"`
	Number  string `json:"number,omitempty"`
	Date    string `json:"date,omitempty"`
	Checked string `json:"checked,omitempty"`
}

type customFieldItem struct {
	Value any `json:"value"`
}

// SetCustomFieldOnCard writes a custom field value on a card. The value is
// sent as a JSON body, which is the only encoding the custom fields endpoint
// accepts.
func (c *Client) SetCustomFieldOnCard(ctx context.Context, cardID, fieldID string, value CustomFieldValue) error {
	body := customFieldItem{Value: value}
	if err := c.putJSON(ctx, "/1/cards/"+cardID+"/customField/"+fieldID+"/item", body, nil); err != nil {
		return errors.Wrapf(err, "failed to set custom field %s on card %s", fieldID, cardID)
	}

	return nil
}

// ClearCustomFieldOnCard removes a custom field value from a card. Trello
// clears a field when the value is the empty string.
func (c *Client) ClearCustomFieldOnCard(ctx context.Context, cardID, fieldID string) error {
	body := customFieldItem{Value: ""}
	if err := c.putJSON(ctx, "/1/cards/"+cardID+"/customField/"+fieldID+"/item", body, nil); err != nil {
		return errors.Wrapf(err, "failed to clear custom field %s on card %s", fieldID, cardID)
	}

	return nil
}
