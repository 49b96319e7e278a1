// Package storage talks to the object storage service holding post images.
// Blobs live in one fixed public bucket; a blob's filename is derivable from
// its public URL, which is what post deletion uses to clean up.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Client struct {
	logger     *zap.Logger
	httpClient *http.Client
	origin     string
	bucket     string
}

func New(logger *zap.Logger, origin string, bucket string) *Client {
	return &Client{
		logger:     logger,
		httpClient: &http.Client{},
		origin:     strings.TrimSuffix(origin, "/"),
		bucket:     bucket,
	}
}

// Upload stores the blob under a generated name and returns its public URL.
func (c *Client) Upload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + path.Ext(fileHeader.Filename)

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	fileWriter, err := writer.CreateFormFile("file", name)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create file part for storage request: %s", err.Error())
		return "", err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", err
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		c.logger.Sugar().Errorf("failed to copy file content for storage request: %s", err.Error())
		return "", err
	}

	if err := writer.Close(); err != nil {
		c.logger.Sugar().Errorf("failed to close writer for storage request: %s", err.Error())
		return "", err
	}

	url := fmt.Sprintf("%s/%s/%s", c.origin, c.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to do storage upload request: %s", err.Error())
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Sugar().Errorf("ERROR from storage upload, code(%d), details: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("storage upload failed with status %d", resp.StatusCode)
	}

	return c.PublicURL(name), nil
}

func (c *Client) PublicURL(name string) string {
	return fmt.Sprintf("%s/%s/%s", c.origin, c.bucket, name)
}

// Delete removes the blob behind a public URL. The filename is the URL's last
// path segment.
func (c *Client) Delete(ctx context.Context, publicURL string) error {
	name := path.Base(publicURL)
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("cannot derive filename from url: %s", publicURL)
	}

	url := fmt.Sprintf("%s/%s/%s", c.origin, c.bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to do storage delete request: %s", err.Error())
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("storage delete failed with status %d", resp.StatusCode)
	}

	return nil
}
