package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

// DownloadExcelTemplate returns the raw bytes of the bulk-gift workbook
// template.
func (c *Client) DownloadExcelTemplate(ctx context.Context) ([]byte, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*")

	resp, err := c.do(r, http.MethodGet, "/api/download-excel-template")
	if err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// UploadExcel sends a filled-in workbook as multipart fields "file" and
// "campaign_id".
func (c *Client) UploadExcel(ctx context.Context, file UploadedFile) (json.RawMessage, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	if file.Content == nil {
		return nil, errors.New("upload file content must not be nil")
	}

	fileName := file.FileName
	if fileName == "" {
		fileName = "upload.xlsx"
	}

	r := api.R().
		SetContext(ctx).
		SetFileReader("file", fileName, file.Content).
		SetMultipartFormData(map[string]string{"campaign_id": file.CampaignID})

	return opaque(c.do(r, http.MethodPost, "/api/upload-excel"))
}
