package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// UserResumes lists one user's resumes, degrading to the fixture set
// scoped to that user.
func (c *Client) UserResumes(ctx context.Context, userID string) ([]Resume, error) {
	if c.mode != ModeFixture {
		var resumes []Resume
		err := c.doJSON(ctx, http.MethodGet, "/users/"+userID+"/resumes", nil, &resumes)
		if err == nil {
			return resumes, nil
		}
		if c.mode == ModeLive {
			return nil, err
		}
		c.degraded("resumes.byUser", err)
	}

	var owned []Resume
	for _, resume := range fixtureResumes() {
		if resume.UserID == userID {
			owned = append(owned, resume)
		}
	}
	return owned, nil
}

// UploadResume sends the resume file as a multipart form. Write failures
// propagate.
func (c *Client) UploadResume(ctx context.Context, userID, title, fileName string, file io.Reader, isDefault bool) (*Resume, error) {
	if c.mode == ModeFixture {
		return &Resume{
			ID:         uuid.NewString(),
			UserID:     userID,
			Title:      title,
			FileName:   fileName,
			UploadDate: time.Now().UTC(),
			IsDefault:  isDefault,
		}, nil
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.WriteField("title", title); err != nil {
		return nil, err
	}
	if isDefault {
		if err := writer.WriteField("isDefault", "true"); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/"+userID+"/resumes", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resume Resume
	if err := c.send(req, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

// DownloadResume streams a stored resume file. The caller closes the
// reader. There is no fixture file content, so a fixture-mode client (or a
// fixture-backed id) reports ErrNotFound.
func (c *Client) DownloadResume(ctx context.Context, id string) (io.ReadCloser, error) {
	if c.mode == ModeFixture {
		return nil, ErrNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/resumes/"+id+"/file", nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode}
	}
	return resp.Body, nil
}

func (c *Client) DeleteResume(ctx context.Context, id string) error {
	if c.mode == ModeFixture {
		return nil
	}
	return c.doJSON(ctx, http.MethodDelete, "/resumes/"+id, nil, nil)
}

// SetDefaultResume marks one resume as the default; the backend unsets the
// user's other defaults in the same transaction.
func (c *Client) SetDefaultResume(ctx context.Context, userID, resumeID string) (*Resume, error) {
	if c.mode == ModeFixture {
		for _, resume := range fixtureResumes() {
			if resume.ID == resumeID && resume.UserID == userID {
				resume.IsDefault = true
				return &resume, nil
			}
		}
		return nil, ErrNotFound
	}

	var resume Resume
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+userID+"/resumes/"+resumeID+"/default", nil, &resume); err != nil {
		return nil, err
	}
	return &resume, nil
}
