package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// buildMultipart encodes form fields plus file attachments (field name
// to local path) into a multipart body.
func buildMultipart(fields map[string]string, files map[string]string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	for name, path := range files {
		file, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
		}

		part, err := writer.CreateFormFile(name, filepath.Base(path))
		if err != nil {
			file.Close()
			return nil, "", fmt.Errorf("failed to attach %s: %w", path, err)
		}
		if _, err := io.Copy(part, file); err != nil {
			file.Close()
			return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		file.Close()
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf, writer.FormDataContentType(), nil
}

// CreateMultipart posts a new record with file attachments, used by
// image-bearing resources like restaurants and food items.
func CreateMultipart[T any](ctx context.Context, c *Client, resource string, fields map[string]string, files map[string]string) (*T, error) {
	path := "/api/" + resource

	buf, contentType, err := buildMultipart(fields, files)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, path, nil, buf, contentType)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](path, body)
}

// UpdateMultipart puts changed fields with file attachments to an
// existing record.
func UpdateMultipart[T any](ctx context.Context, c *Client, resource, id string, fields map[string]string, files map[string]string) (*T, error) {
	path := "/api/" + resource + "/" + id

	buf, contentType, err := buildMultipart(fields, files)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPut, path, nil, buf, contentType)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](path, body)
}
