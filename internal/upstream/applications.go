package upstream

import (
	"context"
	"fmt"

	"careerconnect/gateway/internal/models"
)

func (c *Client) Apply(ctx context.Context, app models.Application) (*models.Application, error) {
	var created models.Application
	if err := c.do(ctx, "POST", "/applications/apply", nil, app, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ApplicationsByJobSeeker(ctx context.Context, userID int64) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, "GET", fmt.Sprintf("/applications/by-job-seeker/%d", userID), nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) ApplicationsByEmployer(ctx context.Context, employerID int64) ([]models.Application, error) {
	var apps []models.Application
	if err := c.do(ctx, "GET", fmt.Sprintf("/applications/employer/%d", employerID), nil, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, "PUT", fmt.Sprintf("/applications/update/%d", id), nil, body, nil)
}
