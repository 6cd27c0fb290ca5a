package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Checklist represents a checklist attached to a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDBoard    string      `json:"idBoard"`
	IDCard     string      `json:"idCard"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems,omitempty"`
}

// CheckItem is a single entry within a checklist. State is "complete" or
// "incomplete".
type CheckItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	State       string  `json:"state"`
	IDChecklist string  `json:"idChecklist"`
	Pos         float64 `json:"pos"`
}

// AddChecklistToCard creates a new checklist on a card.
func (c *Client) AddChecklistToCard(ctx context.Context, cardID, name string) (*Checklist, error) {
	args := NewArguments().Set("name", name)

	var checklist Checklist
	if err := c.post(ctx, "/1/cards/"+cardID+"/checklists", args, &checklist); err != nil {
		return nil, errors.Wrapf(err, "failed to add checklist to card %s", cardID)
	}

	return &checklist, nil
}

// AddExistingChecklistToCard copies an existing checklist onto a card.
func (c *Client) AddExistingChecklistToCard(ctx context.Context, cardID, checklistID string) (*Checklist, error) {
	args := NewArguments().Set("idChecklistSource", checklistID)

	var checklist Checklist
	if err := c.post(ctx, "/1/cards/"+cardID+"/checklists", args, &checklist); err != nil {
		return nil, errors.Wrapf(err, "failed to add checklist %s to card %s", checklistID, cardID)
	}

	return &checklist, nil
}

// GetChecklistsOnCard retrieves the checklists on a card, with their items.
func (c *Client) GetChecklistsOnCard(ctx context.Context, cardID string) ([]Checklist, error) {
	var checklists []Checklist
	if err := c.get(ctx, "/1/cards/"+cardID+"/checklists", nil, &checklists); err != nil {
		return nil, errors.Wrapf(err, "failed to get checklists on card %s", cardID)
	}

	return checklists, nil
}

// AddItemToChecklist appends a new item to a checklist.
func (c *Client) AddItemToChecklist(ctx context.Context, checklistID, name string) (*CheckItem, error) {
	args := NewArguments().Set("name", name)

	var item CheckItem
	if err := c.post(ctx, "/1/checklists/"+checklistID+"/checkItems", args, &item); err != nil {
		return nil, errors.Wrapf(err, "failed to add item to checklist %s", checklistID)
	}

	return &item, nil
}

// UpdateChecklist renames a checklist.
func (c *Client) UpdateChecklist(ctx context.Context, checklistID, name string) (*Checklist, error) {
	args := NewArguments().Set("name", name)

	var checklist Checklist
	if err := c.put(ctx, "/1/checklists/"+checklistID, args, &checklist); err != nil {
		return nil, errors.Wrapf(err, "failed to update checklist %s", checklistID)
	}

	return &checklist, nil
}
