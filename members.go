package trello

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Member represents a Trello member account.
type Member struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	FullName   string   `json:"fullName"`
	Initials   string   `json:"initials"`
	AvatarURL  string   `json:"avatarUrl,omitempty"`
	Email      string   `json:"email,omitempty"`
	URL        string   `json:"url"`
	IDBoards   []string `json:"idBoards,omitempty"`
	MemberType string   `json:"memberType,omitempty"`
}

// Organization represents a Trello workspace.
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Desc        string `json:"desc"`
	URL         string `json:"url"`
	Website     string `json:"website,omitempty"`
}

// GetMember retrieves a member by ID or username. The special ID "me"
// resolves to the member owning the token.
func (c *Client) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var member Member
	if err := c.get(ctx, "/1/members/"+memberID, nil, &member); err != nil {
		return nil, errors.Wrapf(err, "failed to get member %s", memberID)
	}

	return &member, nil
}

// GetBoardsForMember retrieves the boards a member belongs to.
func (c *Client) GetBoardsForMember(ctx context.Context, memberID string) ([]Board, error) {
	var boards []Board
	if err := c.get(ctx, "/1/members/"+memberID+"/boards", nil, &boards); err != nil {
		return nil, errors.Wrapf(err, "failed to get boards for member %s", memberID)
	}

	return boards, nil
}

// GetOrganizationsForMember retrieves the workspaces a member belongs to.
func (c *Client) GetOrganizationsForMember(ctx context.Context, memberID string) ([]Organization, error) {
	var orgs []Organization
	if err := c.get(ctx, "/1/members/"+memberID+"/organizations", nil, &orgs); err != nil {
		return nil, errors.Wrapf(err, "failed to get organizations for member %s", memberID)
	}

	return orgs, nil
}

// GetCardsForMember retrieves the cards assigned to a member.
func (c *Client) GetCardsForMember(ctx context.Context, memberID string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, "/1/members/"+memberID+"/cards", nil, &cards); err != nil {
		return nil, errors.Wrapf(err, "failed to get cards for member %s", memberID)
	}

	return cards, nil
}
