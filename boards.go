package trello

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
)

// Board represents a Trello board.
type Board struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Desc           string            `json:"desc"`
	Closed         bool              `json:"closed"`
	IDOrganization string            `json:"idOrganization"`
	Pinned         bool              `json:"pinned"`
	URL            string            `json:"url"`
	ShortURL       string            `json:"shortUrl"`
	ShortLink      string            `json:"shortLink"`
	Starred        bool              `json:"starred"`
	LabelNames     map[string]string `json:"labelNames,omitempty"`
	Prefs          BoardPrefs        `json:"prefs,omitempty"`
}

// BoardPrefs holds a board's display and permission preferences.
type BoardPrefs struct {
	PermissionLevel string `json:"permissionLevel"`
	Voting          string `json:"voting"`
	Comments        string `json:"comments"`
	Invitations     string `json:"invitations"`
	SelfJoin        bool   `json:"selfJoin"`
	CardCovers      bool   `json:"cardCovers"`
	Background      string `json:"background"`
}

// BoardField enumerates the board attributes UpdateBoard can write.
type BoardField string

const (
	BoardFieldName           BoardField = "name"
	BoardFieldDesc           BoardField = "desc"
	BoardFieldClosed         BoardField = "closed"
	BoardFieldSubscribed     BoardField = "subscribed"
	BoardFieldIDOrganization BoardField = "idOrganization"
)

var boardFields = map[BoardField]struct{}{
	BoardFieldName:           {},
	BoardFieldDesc:           {},
	BoardFieldClosed:         {},
	BoardFieldSubscribed:     {},
	BoardFieldIDOrganization: {},
}

// GetBoard retrieves a board by ID.
func (c *Client) GetBoard(ctx context.Context, boardID string) (*Board, error) {
	var board Board
	if err := c.get(ctx, "/1/boards/"+boardID, nil, &board); err != nil {
		return nil, errors.Wrapf(err, "failed to get board %s", boardID)
	}

	return &board, nil
}

// AddBoard creates a new board. description and organizationID are optional.
func (c *Client) AddBoard(ctx context.Context, name, description, organizationID string) (*Board, error) {
	args := NewArguments().Set("name", name)
	if description != "" {
		args.Set("desc", description)
	}
	if organizationID != "" {
		args.Set("idOrganization", organizationID)
	}

	var board Board
	if err := c.post(ctx, "/1/boards/", args, &board); err != nil {
		return nil, errors.Wrap(err, "failed to add board")
	}

	return &board, nil
}

// UpdateBoard writes a single board attribute. The field must be one of the
// BoardField constants; unknown fields fail with a *ValidationError before
// any network activity.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, field BoardField, value any) (*Board, error) {
	if _, ok := boardFields[field]; !ok {
		return nil, &ValidationError{
			Message: fmt.Sprintf("unknown board field %q", field),
		}
	}

	args := NewArguments().Set(string(field), value)

	var board Board
	if err := c.put(ctx, "/1/boards/"+boardID, args, &board); err != nil {
		return nil, errors.Wrapf(err, "failed to update board %s", boardID)
	}

	return &board, nil
}

// DeleteBoard permanently deletes a board.
func (c *Client) DeleteBoard(ctx context.Context, boardID string) error {
	if err := c.delete(ctx, "/1/boards/"+boardID, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete board %s", boardID)
	}

	return nil
}

// GetBoardMembers retrieves the members of a board.
func (c *Client) GetBoardMembers(ctx context.Context, boardID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, "/1/boards/"+boardID+"/members", nil, &members); err != nil {
		return nil, errors.Wrapf(err, "failed to get members of board %s", boardID)
	}

	return members, nil
}

// AddMemberToBoard adds a member to a board with the given role
// ("admin", "normal", or "observer").
func (c *Client) AddMemberToBoard(ctx context.Context, boardID, memberID, memberType string) error {
	args := NewArguments().Set("type", memberType)

	if err := c.put(ctx, "/1/boards/"+boardID+"/members/"+memberID, args, nil); err != nil {
		return errors.Wrapf(err, "failed to add member %s to board %s", memberID, boardID)
	}

	return nil
}

// GetListsOnBoard retrieves the lists on a board.
func (c *Client) GetListsOnBoard(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	if err := c.get(ctx, "/1/boards/"+boardID+"/lists", nil, &lists); err != nil {
		return nil, errors.Wrapf(err, "failed to get lists on board %s", boardID)
	}

	return lists, nil
}

// GetListsOnBoardByFilter retrieves the lists on a board matching a filter
// ("open", "closed", "none", or "all").
func (c *Client) GetListsOnBoardByFilter(ctx context.Context, boardID, filter string) ([]List, error) {
	var lists []List
	if err := c.get(ctx, "/1/boards/"+boardID+"/lists/"+filter, nil, &lists); err != nil {
		return nil, errors.Wrapf(err, "failed to get lists on board %s with filter %s", boardID, filter)
	}

	return lists, nil
}

// GetCardsOnBoard retrieves all cards on a board.
func (c *Client) GetCardsOnBoard(ctx context.Context, boardID string) ([]Card, error) {
	return c.GetCardsOnBoardWithExtraParams(ctx, boardID, nil)
}

// GetCardsOnBoardWithExtraParams retrieves the cards on a board with
// additional query parameters (e.g. fields, filter, attachments).
func (c *Client) GetCardsOnBoardWithExtraParams(ctx context.Context, boardID string, extra *Arguments) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, "/1/boards/"+boardID+"/cards", extra, &cards); err != nil {
		return nil, errors.Wrapf(err, "failed to get cards on board %s", boardID)
	}

	return cards, nil
}

// GetActionsOnBoard retrieves the recent actions on a board.
func (c *Client) GetActionsOnBoard(ctx context.Context, boardID string) ([]Action, error) {
	var actions []Action
	if err := c.get(ctx, "/1/boards/"+boardID+"/actions", nil, &actions); err != nil {
		return nil, errors.Wrapf(err, "failed to get actions on board %s", boardID)
	}

	return actions, nil
}

// GetLabelsForBoard retrieves the labels defined on a board.
func (c *Client) GetLabelsForBoard(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	if err := c.get(ctx, "/1/boards/"+boardID+"/labels", nil, &labels); err != nil {
		return nil, errors.Wrapf(err, "failed to get labels for board %s", boardID)
	}

	return labels, nil
}

// GetCustomFieldsOnBoard retrieves the custom field definitions on a board.
func (c *Client) GetCustomFieldsOnBoard(ctx context.Context, boardID string) ([]CustomField, error) {
	var fields []CustomField
	if err := c.get(ctx, "/1/boards/"+boardID+"/customFields", nil, &fields); err != nil {
		return nil, errors.Wrapf(err, "failed to get custom fields on board %s", boardID)
	}

	return fields, nil
}
