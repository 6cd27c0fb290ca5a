package trello

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// Action represents an entry in Trello's activity feed, such as a comment
// or a card move. Data carries the type-specific payload verbatim.
type Action struct {
	ID              string          `json:"id"`
	IDMemberCreator string          `json:"idMemberCreator"`
	Type            string          `json:"type"`
	Date            time.Time       `json:"date"`
	Data            json.RawMessage `json:"data,omitempty"`
	MemberCreator   *Member         `json:"memberCreator,omitempty"`
}

// GetAction retrieves a single action by ID.
func (c *Client) GetAction(ctx context.Context, actionID string) (*Action, error) {
	var action Action
	if err := c.get(ctx, "/1/actions/"+actionID, nil, &action); err != nil {
		return nil, errors.Wrapf(err, "failed to get action %s", actionID)
	}

	return &action, nil
}

// DeleteAction deletes an action. Only comment actions can be deleted.
func (c *Client) DeleteAction(ctx context.Context, actionID string) error {
	if err := c.delete(ctx, "/1/actions/"+actionID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete action %s", actionID)
	}

	return nil
}
