package upstream

import (
	"context"
	"fmt"

	"careerconnect/gateway/internal/models"
)

func (c *Client) JobSeekerByUser(ctx context.Context, userID int64) (*models.JobSeekerProfile, error) {
	var profile models.JobSeekerProfile
	if err := c.do(ctx, "GET", fmt.Sprintf("/job-seekers/by-user/%d", userID), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CreateJobSeeker(ctx context.Context, profile models.JobSeekerProfile) (*models.JobSeekerProfile, error) {
	var created models.JobSeekerProfile
	if err := c.do(ctx, "POST", "/job-seekers/create", nil, profile, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateJobSeeker(ctx context.Context, id int64, profile models.JobSeekerProfile) (*models.JobSeekerProfile, error) {
	var updated models.JobSeekerProfile
	if err := c.do(ctx, "PUT", fmt.Sprintf("/job-seekers/update/%d", id), nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) EmployerByUser(ctx context.Context, userID int64) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := c.do(ctx, "GET", fmt.Sprintf("/employers/by-user/%d", userID), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) CreateEmployer(ctx context.Context, profile models.EmployerProfile) (*models.EmployerProfile, error) {
	var created models.EmployerProfile
	if err := c.do(ctx, "POST", "/employers/create", nil, profile, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateEmployer(ctx context.Context, id int64, profile models.EmployerProfile) (*models.EmployerProfile, error) {
	var updated models.EmployerProfile
	if err := c.do(ctx, "PUT", fmt.Sprintf("/employers/update/%d", id), nil, profile, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
