package api

import (
	"context"
	"net/http"

	"medico/models"
)

// FetchDoctors retrieves the full doctor collection. Filtering happens on our
// side; ordering is whatever the directory returned.
func (c *Client) FetchDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctor", "", nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// FetchDoctor retrieves a single doctor by id.
func (c *Client) FetchDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.do(ctx, http.MethodGet, "/doctor/"+id, "", nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}
