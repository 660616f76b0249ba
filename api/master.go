package api

import (
	"context"
	"net/http"

	"medico/models"
)

// FetchMasterData retrieves the reference vocabulary for search controls.
func (c *Client) FetchMasterData(ctx context.Context) (*models.MasterData, error) {
	var master models.MasterData
	if err := c.do(ctx, http.MethodGet, "/master", "", nil, &master); err != nil {
		return nil, err
	}
	return &master, nil
}
