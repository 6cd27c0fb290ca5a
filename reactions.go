package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Emoji describes the emoji attached to a reaction.
type Emoji struct {
	Unified       string `json:"unified"`
	Native        string `json:"native"`
	Name          string `json:"name"`
	ShortName     string `json:"shortName"`
	SkinVariation string `json:"skinVariation,omitempty"`
}

// Reaction represents an emoji reaction on a comment action.
type Reaction struct {
	ID       string  `json:"id"`
	IDMember string  `json:"idMember"`
	IDModel  string  `json:"idModel"`
	IDEmoji  string  `json:"idEmoji"`
	Member   *Member `json:"member,omitempty"`
	Emoji    *Emoji  `json:"emoji,omitempty"`
}

// ReactionRequest selects the emoji to react with. Trello matches on any of
// the identifying fields; ShortName alone (for example "thumbsup") is enough.
type ReactionRequest struct {
	ShortName     string `json:"shortName,omitempty"`
	SkinVariation string `json:"skinVariation,omitempty"`
	Native        string `json:"native,omitempty"`
	Unified       string `json:"unified,omitempty"`
}

// GetReactionsOnAction retrieves the reactions on a comment action.
func (c *Client) GetReactionsOnAction(ctx context.Context, actionID string) ([]Reaction, error) {
	var reactions []Reaction
	if err := c.get(ctx, "/1/actions/"+actionID+"/reactions", nil, &reactions); err != nil {
		return nil, errors.Wrapf(err, "failed to get reactions on action %s", actionID)
	}

	return reactions, nil
}

// AddReactionToAction adds an emoji reaction to a comment action. The
// reaction is sent as a JSON body rather than query parameters.
func (c *Client) AddReactionToAction(ctx context.Context, actionID string, reaction ReactionRequest) (*Reaction, error) {
	var created Reaction
	if err := c.postJSON(ctx, "/1/actions/"+actionID+"/reactions", reaction, &created); err != nil {
		return nil, errors.Wrapf(err, "failed to add reaction to action %s", actionID)
	}

	return &created, nil
}

// DeleteReactionFromAction removes a reaction from a comment action.
func (c *Client) DeleteReactionFromAction(ctx context.Context, actionID, reactionID string) error {
	if err := c.delete(ctx, "/1/actions/"+actionID+"/reactions/"+reactionID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete reaction %s from action %s", reactionID, actionID)
	}

	return nil
}
