// Package football provides typed access to the league data endpoints.
// All calls go through the shared dispatcher and therefore inherit
// credential attachment and the uniform failure handling.
package football

import (
	"context"
	"errors"
	"fmt"

	"github.com/futdash/futdash/internal/dispatch"
)

// Client wraps the dispatcher with the league data surface.
type Client struct {
	api *dispatch.Dispatcher
}

// NewClient creates a football Client on top of api.
func NewClient(api *dispatch.Dispatcher) *Client {
	return &Client{api: api}
}

// BrasileiraoTeams lists the teams of the Brasileirão Série A.
func (c *Client) BrasileiraoTeams(ctx context.Context) (*TeamsList, error) {
	var list TeamsList
	if err := c.api.Get(ctx, "/teams/brasileirao", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Team fetches the full profile of one team.
func (c *Client) Team(ctx context.Context, id int) (*TeamDetails, error) {
	var details TeamDetails
	if err := c.api.Get(ctx, fmt.Sprintf("/teams/%d", id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// TeamMatches fetches a team's match history.
func (c *Client) TeamMatches(ctx context.Context, id int) (*MatchesList, error) {
	var list MatchesList
	if err := c.api.Get(ctx, fmt.Sprintf("/teams/%d/matches", id), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Indicators fetches the aggregate statistics.
func (c *Client) Indicators(ctx context.Context) (*Indicators, error) {
	var ind Indicators
	if err := c.api.Get(ctx, "/indicadores", &ind); err != nil {
		return nil, err
	}
	return &ind, nil
}

// ImportData triggers a backend refresh from the upstream provider. The
// backend signals failure inside a 200 body, so that is checked here.
func (c *Client) ImportData(ctx context.Context) (*ImportResult, error) {
	var result ImportResult
	if err := c.api.Post(ctx, "/importar", nil, &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		if result.Detail != "" {
			return nil, errors.New(result.Detail)
		}
		return nil, errors.New(result.Error)
	}
	return &result, nil
}
