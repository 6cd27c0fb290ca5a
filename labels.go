package trello

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Label represents a colored board label.
type Label struct {
	ID      string `json:"id"`
	IDBoard string `json:"idBoard"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Uses    int    `json:"uses,omitempty"`
}

// LabelField enumerates the label attributes UpdateLabel can write.
type LabelField string

const (
	LabelFieldName  LabelField = "name"
	LabelFieldColor LabelField = "color"
)

var labelFields = map[LabelField]struct{}{
	LabelFieldName:  {},
	LabelFieldColor: {},
}

// GetLabel retrieves a label by ID.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	var label Label
	if err := c.get(ctx, "/1/labels/"+labelID, nil, &label); err != nil {
		return nil, errors.Wrapf(err, "failed to get label %s", labelID)
	}

	return &label, nil
}

// AddLabelOnBoard creates a label on a board. color may be empty for a
// colorless label.
func (c *Client) AddLabelOnBoard(ctx context.Context, boardID, name, color string) (*Label, error) {
	args := NewArguments().
		Set("name", name).
		Set("color", color).
		Set("idBoard", boardID)

	var label Label
	if err := c.post(ctx, "/1/labels", args, &label); err != nil {
		return nil, errors.Wrapf(err, "failed to add label on board %s", boardID)
	}

	return &label, nil
}

// UpdateLabel writes a single label attribute. The field must be one of the
// LabelField constants; unknown fields fail with a *ValidationError before
// any network activity.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, field LabelField, value any) (*Label, error) {
	if _, ok := labelFields[field]; !ok {
		return nil, &ValidationError{
			Message: fmt.Sprintf("unknown label field %q", field),
		}
	}

	args := NewArguments().Set(string(field), value)

	var label Label
	if err := c.put(ctx, "/1/labels/"+labelID, args, &label); err != nil {
		return nil, errors.Wrapf(err, "failed to update label %s", labelID)
	}

	return &label, nil
}

// DeleteLabel deletes a label from its board.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	if err := c.delete(ctx, "/1/labels/"+labelID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete label %s", labelID)
	}

	return nil
}
