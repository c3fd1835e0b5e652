package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"careerconnect/gateway/internal/models"
)

func (c *Client) ResumeByUser(ctx context.Context, jobSeekerID int64) (*models.Resume, error) {
	var resume models.Resume
	if err := c.do(ctx, "GET", fmt.Sprintf("/resumes/by-user/%d", jobSeekerID), nil, nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// UploadResume forwards the file bytes as multipart form data. The
// gateway does not inspect or convert the document; preview and format
// handling are entirely the upstream's concern.
func (c *Client) UploadResume(ctx context.Context, jobSeekerID int64, fileName string, file io.Reader) (*models.Resume, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("build resume form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("copy resume file: %w", err)
	}
	if err := form.WriteField("jobSeekerId", strconv.FormatInt(jobSeekerID, 10)); err != nil {
		return nil, fmt.Errorf("build resume form: %w", err)
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("close resume form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/resumes/upload", nil, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, responseError(resp)
	}

	var resume models.Resume
	if err := json.NewDecoder(resp.Body).Decode(&resume); err != nil {
		return nil, fmt.Errorf("decode resume upload: %w", err)
	}
	return &resume, nil
}

// DownloadResume streams the stored document back; the caller owns
// closing the response body.
func (c *Client) DownloadResume(ctx context.Context, filePath string) (*http.Response, error) {
	query := url.Values{"path": {filePath}}
	return c.stream(ctx, "/resumes/download", query)
}

func (c *Client) DeleteResume(ctx context.Context, resumeID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/resumes/delete/%d", resumeID), nil, nil, nil)
}
