package upstream

import (
	"context"
	"fmt"

	"careerconnect/gateway/internal/models"
)

func (c *Client) ListJobs(ctx context.Context) ([]models.JobListing, error) {
	var jobs []models.JobListing
	if err := c.do(ctx, "GET", "/job-listings/getall", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) GetJob(ctx context.Context, id int64) (*models.JobListing, error) {
	var job models.JobListing
	if err := c.do(ctx, "GET", fmt.Sprintf("/job-listings/getbyid/%d", id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, job models.JobListing) (*models.JobListing, error) {
	var created models.JobListing
	if err := c.do(ctx, "POST", "/job-listings/create", nil, job, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateJob(ctx context.Context, id int64, job models.JobListing) (*models.JobListing, error) {
	var updated models.JobListing
	if err := c.do(ctx, "PUT", fmt.Sprintf("/job-listings/update/%d", id), nil, job, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/job-listings/delete/%d", id), nil, nil, nil)
}

// Recommendations come entirely from the upstream matching engine; the
// gateway only forwards the job seeker id.
func (c *Client) Recommendations(ctx context.Context, jobSeekerID int64) ([]models.JobListing, error) {
	var jobs []models.JobListing
	if err := c.do(ctx, "GET", fmt.Sprintf("/jobsearches/recommend/user/%d", jobSeekerID), nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
