package trello

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

// Card represents a Trello card.
type Card struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Desc        string     `json:"desc"`
	Closed      bool       `json:"closed"`
	IDBoard     string     `json:"idBoard"`
	IDList      string     `json:"idList"`
	IDMembers   []string   `json:"idMembers,omitempty"`
	IDLabels    []string   `json:"idLabels,omitempty"`
	Labels      []Label    `json:"labels,omitempty"`
	Due         *time.Time `json:"due,omitempty"`
	DueComplete bool       `json:"dueComplete"`
	Pos         float64    `json:"pos"`
	ShortLink   string     `json:"shortLink"`
	ShortURL    string     `json:"shortUrl"`
	URL         string     `json:"url"`
}

// Attachment represents a file or link attached to a card.
type Attachment struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	URL      string     `json:"url"`
	Bytes    int64      `json:"bytes"`
	Date     *time.Time `json:"date,omitempty"`
	IDMember string     `json:"idMember"`
	MimeType string     `json:"mimeType"`
	IsUpload bool       `json:"isUpload"`
}

// CardField enumerates the card attributes UpdateCard can write. The source
// API accepts arbitrary field path segments; constraining the set here turns
// typos into synchronous validation errors instead of opaque 400s.
type CardField string

const (
	CardFieldName        CardField = "name"
	CardFieldDesc        CardField = "desc"
	CardFieldClosed      CardField = "closed"
	CardFieldDue         CardField = "due"
	CardFieldDueComplete CardField = "dueComplete"
	CardFieldPos         CardField = "pos"
	CardFieldIDList      CardField = "idList"
	CardFieldSubscribed  CardField = "subscribed"
)

var cardFields = map[CardField]struct{}{
	CardFieldName:        {},
	CardFieldDesc:        {},
	CardFieldClosed:      {},
	CardFieldDue:         {},
	CardFieldDueComplete: {},
	CardFieldPos:         {},
	CardFieldIDList:      {},
	CardFieldSubscribed:  {},
}

// GetCard retrieves a card by ID.
func (c *Client) GetCard(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := c.get(ctx, "/1/cards/"+cardID, nil, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to get card %s", cardID)
	}

	return &card, nil
}

// AddCard creates a card at the bottom of a list. description is optional.
func (c *Client) AddCard(ctx context.Context, listID, name, description string) (*Card, error) {
	args := NewArguments()
	if description != "" {
		args.Set("desc", description)
	}

	return c.AddCardWithExtraParams(ctx, listID, name, args)
}

// AddCardWithExtraParams creates a card with additional parameters
// (e.g. pos, due, idMembers, idLabels).
func (c *Client) AddCardWithExtraParams(ctx context.Context, listID, name string, extra *Arguments) (*Card, error) {
	args := NewArguments().
		Set("name", name).
		Set("idList", listID)
	if extra != nil {
		for _, k := range extra.Keys() {
			v, _ := extra.Get(k)
			args.Set(k, v)
		}
	}

	var card Card
	if err := c.post(ctx, "/1/cards", args, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to add card to list %s", listID)
	}

	return &card, nil
}

// DeleteCard permanently deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	if err := c.delete(ctx, "/1/cards/"+cardID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete card %s", cardID)
	}

	return nil
}

// UpdateCard writes a single card attribute. The field must be one of the
// CardField constants; unknown fields fail with a *ValidationError before
// any network activity.
func (c *Client) UpdateCard(ctx context.Context, cardID string, field CardField, value any) (*Card, error) {
	if _, ok := cardFields[field]; !ok {
		return nil, &ValidationError{
			Message: fmt.Sprintf("unknown card field %q", field),
		}
	}

	args := NewArguments().Set(string(field), value)

	var card Card
	if err := c.put(ctx, "/1/cards/"+cardID, args, &card); err != nil {
		return nil, errors.Wrapf(err, "failed to update card %s", cardID)
	}

	return &card, nil
}

// UpdateCardName renames a card.
func (c *Client) UpdateCardName(ctx context.Context, cardID, name string) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldName, name)
}

// UpdateCardDescription replaces a card's description.
func (c *Client) UpdateCardDescription(ctx context.Context, cardID, description string) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldDesc, description)
}

// UpdateCardDueDate sets a card's due date.
func (c *Client) UpdateCardDueDate(ctx context.Context, cardID string, due time.Time) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldDue, due)
}

// AddDueDateToCard sets a card's due date. It is an alias for
// UpdateCardDueDate kept for symmetry with the other Add* helpers.
func (c *Client) AddDueDateToCard(ctx context.Context, cardID string, due time.Time) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldDue, due)
}

// UpdateCardPosition moves a card within its list. pos may be a number or
// the strings "top" / "bottom".
func (c *Client) UpdateCardPosition(ctx context.Context, cardID string, pos any) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldPos, pos)
}

// MoveCardToList moves a card to another list.
func (c *Client) MoveCardToList(ctx context.Context, cardID, listID string) (*Card, error) {
	return c.UpdateCard(ctx, cardID, CardFieldIDList, listID)
}

// AddCommentToCard posts a comment on a card. The created comment is
// returned as an Action.
func (c *Client) AddCommentToCard(ctx context.Context, cardID, text string) (*Action, error) {
	args := NewArguments().Set("text", text)

	var action Action
	if err := c.post(ctx, "/1/cards/"+cardID+"/actions/comments", args, &action); err != nil {
		return nil, errors.Wrapf(err, "failed to add comment to card %s", cardID)
	}

	return &action, nil
}

// UpdateCommentOnCard replaces the text of an existing comment.
func (c *Client) UpdateCommentOnCard(ctx context.Context, cardID, commentID, text string) (*Action, error) {
	args := NewArguments().Set("text", text)

	var action Action
	if err := c.put(ctx, "/1/cards/"+cardID+"/actions/"+commentID+"/comments", args, &action); err != nil {
		return nil, errors.Wrapf(err, "failed to update comment %s on card %s", commentID, cardID)
	}

	return &action, nil
}

// DeleteCommentFromCard removes a comment from a card.
func (c *Client) DeleteCommentFromCard(ctx context.Context, cardID, commentID string) error {
	if err := c.delete(ctx, "/1/cards/"+cardID+"/actions/"+commentID+"/comments", nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete comment %s from card %s", commentID, cardID)
	}

	return nil
}

// GetActionsOnCard retrieves the recent actions (comments included) on a card.
func (c *Client) GetActionsOnCard(ctx context.Context, cardID string) ([]Action, error) {
	var actions []Action
	if err := c.get(ctx, "/1/cards/"+cardID+"/actions", nil, &actions); err != nil {
		return nil, errors.Wrapf(err, "failed to get actions on card %s", cardID)
	}

	return actions, nil
}

// AddAttachmentToCard attaches a URL to a card.
func (c *Client) AddAttachmentToCard(ctx context.Context, cardID, attachmentURL string) (*Attachment, error) {
	args := NewArguments().Set("url", attachmentURL)

	var attachment Attachment
	if err := c.post(ctx, "/1/cards/"+cardID+"/attachments", args, &attachment); err != nil {
		return nil, errors.Wrapf(err, "failed to add attachment to card %s", cardID)
	}

	return &attachment, nil
}

// GetAttachmentsOnCard retrieves a card's attachments.
func (c *Client) GetAttachmentsOnCard(ctx context.Context, cardID string) ([]Attachment, error) {
	var attachments []Attachment
	if err := c.get(ctx, "/1/cards/"+cardID+"/attachments", nil, &attachments); err != nil {
		return nil, errors.Wrapf(err, "failed to get attachments on card %s", cardID)
	}

	return attachments, nil
}

// AddMemberToCard assigns a member to a card and returns the card's updated
// member set.
func (c *Client) AddMemberToCard(ctx context.Context, cardID, memberID string) ([]Member, error) {
	args := NewArguments().Set("value", memberID)

	var members []Member
	if err := c.post(ctx, "/1/cards/"+cardID+"/idMembers", args, &members); err != nil {
		return nil, errors.Wrapf(err, "failed to add member %s to card %s", memberID, cardID)
	}

	return members, nil
}

// DeleteMemberFromCard unassigns a member from a card.
func (c *Client) DeleteMemberFromCard(ctx context.Context, cardID, memberID string) error {
	if err := c.delete(ctx, "/1/cards/"+cardID+"/idMembers/"+memberID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete member %s from card %s", memberID, cardID)
	}

	return nil
}

// AddLabelToCard attaches an existing board label to a card.
func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	args := NewArguments().Set("value", labelID)

	if err := c.post(ctx, "/1/cards/"+cardID+"/idLabels", args, nil); err != nil {
		return errors.Wrapf(err, "failed to add label %s to card %s", labelID, cardID)
	}

	return nil
}

// DeleteLabelFromCard detaches a label from a card.
func (c *Client) DeleteLabelFromCard(ctx context.Context, cardID, labelID string) error {
	if err := c.delete(ctx, "/1/cards/"+cardID+"/idLabels/"+labelID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete label %s from card %s", labelID, cardID)
	}

	return nil
}
