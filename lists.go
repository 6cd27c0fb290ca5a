package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// List represents a Trello list, a vertical column of cards on a board.
type List struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Closed     bool    `json:"closed"`
	IDBoard    string  `json:"idBoard"`
	Pos        float64 `json:"pos"`
	Subscribed bool    `json:"subscribed"`
}

// GetList retrieves a list by ID.
func (c *Client) GetList(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := c.get(ctx, "/1/lists/"+listID, nil, &list); err != nil {
		return nil, errors.Wrapf(err, "failed to get list %s", listID)
	}

	return &list, nil
}

// AddListToBoard creates a new list on a board.
func (c *Client) AddListToBoard(ctx context.Context, boardID, name string) (*List, error) {
	args := NewArguments().Set("name", name).Set("idBoard", boardID)

	var list List
	if err := c.post(ctx, "/1/lists", args, &list); err != nil {
		return nil, errors.Wrapf(err, "failed to add list to board %s", boardID)
	}

	return &list, nil
}

// RenameList changes a list's name.
func (c *Client) RenameList(ctx context.Context, listID, name string) (*List, error) {
	args := NewArguments().Set("value", name)

	var list List
	if err := c.put(ctx, "/1/lists/"+listID+"/name", args, &list); err != nil {
		return nil, errors.Wrapf(err, "failed to rename list %s", listID)
	}

	return &list, nil
}

// ArchiveList closes a list, hiding it from the board.
func (c *Client) ArchiveList(ctx context.Context, listID string) (*List, error) {
	args := NewArguments().Set("value", true)

	var list List
	if err := c.put(ctx, "/1/lists/"+listID+"/closed", args, &list); err != nil {
		return nil, errors.Wrapf(err, "failed to archive list %s", listID)
	}

	return &list, nil
}

// GetCardsOnList retrieves the cards on a list.
func (c *Client) GetCardsOnList(ctx context.Context, listID string) ([]Card, error) {
	return c.GetCardsForList(ctx, listID, nil)
}

// GetCardsForList retrieves the cards on a list with optional extra query
// parameters such as "actions" or "fields".
func (c *Client) GetCardsForList(ctx context.Context, listID string, extra *Arguments) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, "/1/lists/"+listID+"/cards", extra, &cards); err != nil {
		return nil, errors.Wrapf(err, "failed to get cards on list %s", listID)
	}

	return cards, nil
}
