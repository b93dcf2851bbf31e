package client

import "io"

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	APIKey      string `json:"api_key,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// CreateUserRequest is sent as multipart form data. CompanyName is omitted
// when empty.
type CreateUserRequest struct {
	Email       string
	FullName    string
	CompanyName string
}

type GiftRequest struct {
	RecipientEmail string  `json:"recipientEmail"`
	RecipientName  string  `json:"recipientName,omitempty"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency,omitempty"`
	CampaignID     string  `json:"campaignId,omitempty"`
	Message        string  `json:"message,omitempty"`
}

type InitiateGiftResponse struct {
	GiftID string `json:"giftId"`
}

type BulkGiftRequest struct {
	CampaignID string        `json:"campaignId,omitempty"`
	Gifts      []GiftRequest `json:"gifts"`
}

type BulkGiftResponse struct {
	Success    bool     `json:"success"`
	CampaignID string   `json:"campaignId,omitempty"`
	GiftIDs    []string `json:"giftIds,omitempty"`
	Total      int      `json:"total"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors,omitempty"`
}

// GiftStatus is passed through to and from the backend without
// interpretation.
type GiftStatus string

type Gift struct {
	GiftID         string     `json:"giftId"`
	RecipientEmail string     `json:"recipientEmail"`
	RecipientName  string     `json:"recipientName,omitempty"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency,omitempty"`
	CampaignID     string     `json:"campaignId,omitempty"`
	Status         GiftStatus `json:"status"`
	CreatedAt      string     `json:"createdAt,omitempty"`
}

type GiftList struct {
	Success bool   `json:"success"`
	Gifts   []Gift `json:"gifts"`
}

type CampaignResponse struct {
	Success    bool   `json:"success"`
	CampaignID string `json:"campaignId"`
	Gifts      []Gift `json:"gifts"`
	Total      int    `json:"total"`
}

type StatusUpdate struct {
	GiftID string     `json:"giftId"`
	Status GiftStatus `json:"status"`
}

type GiftStatusResponse struct {
	Status GiftStatus `json:"status"`
}

type VerifyGiftRequest struct {
	GiftID   string `json:"giftId"`
	Verified bool   `json:"verified"`
}

// EmailConfig is sent as multipart form data. SendingDomain is omitted when
// empty.
type EmailConfig struct {
	ResendAPIKey  string
	FromEmail     string
	SendingDomain string
}

// EmailConfigTest is sent as multipart form data; empty fields are omitted.
type EmailConfigTest struct {
	ResendAPIKey  string
	FromEmail     string
	SendingDomain string
	TestEmail     string
}

type EmailConfigResponse struct {
	Configured      bool   `json:"configured"`
	FromEmail       string `json:"from_email,omitempty"`
	SendingDomain   string `json:"sending_domain,omitempty"`
	ResendAPIKeySet bool   `json:"resend_api_key_set"`
}

// UploadedFile is an Excel workbook uploaded for a campaign.
type UploadedFile struct {
	FileName   string
	Content    io.Reader
	CampaignID string
}
