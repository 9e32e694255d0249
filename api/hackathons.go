package api

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/hackathons/domain"
)

const (
	collectionPath = "hackathons"
	itemPath       = "hackathon/"
)

// CreateHackathon posts form to the collection.
// The created Hackathon is not read back.
func (c *Client) CreateHackathon(ctx context.Context, form domain.Form) error {
	return c.doJSON(ctx, http.MethodPost, collectionPath, form, nil)
}

// ListHackathons gets the full collection.
func (c *Client) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	hs := make([]domain.Hackathon, 0)
	if err := c.doJSON(ctx, http.MethodGet, collectionPath, nil, &hs); err != nil {
		return nil, err
	}

	return hs, nil
}

// GetHackathon gets the Hackathon identified by id.
func (c *Client) GetHackathon(ctx context.Context, id domain.ID) (domain.Hackathon, error) {
	var h domain.Hackathon
	if err := c.doJSON(ctx, http.MethodGet, itemPath+id.String(), nil, &h); err != nil {
		return domain.Hackathon{}, err
	}

	return h, nil
}

// UpdateHackathon patches the Hackathon identified by id with form.
func (c *Client) UpdateHackathon(ctx context.Context, id domain.ID, form domain.Form) error {
	return c.doJSON(ctx, http.MethodPatch, itemPath+id.String(), form, nil)
}

// DeleteHackathon deletes the Hackathon identified by id.
func (c *Client) DeleteHackathon(ctx context.Context, id domain.ID) error {
	return c.doJSON(ctx, http.MethodDelete, itemPath+id.String(), nil, nil)
}
