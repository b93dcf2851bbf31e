package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// DefaultGiftListLimit is used by [Client.ListGifts] when limit is not positive.
const DefaultGiftListLimit = 50

func (c *Client) InitiateGift(ctx context.Context, gift GiftRequest) (*InitiateGiftResponse, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().SetContext(ctx).SetBody(gift)

	return decode[InitiateGiftResponse](c.do(r, http.MethodPost, "/api/initiate-gift"))
}

// BulkInitiateGifts submits several gifts in one request. The backend
// decides how partial failures are reported in the response.
func (c *Client) BulkInitiateGifts(ctx context.Context, req BulkGiftRequest) (*BulkGiftResponse, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().SetContext(ctx).SetBody(req)

	return decode[BulkGiftResponse](c.do(r, http.MethodPost, "/api/bulk-initiate-gifts"))
}

func (c *Client) ListGifts(ctx context.Context, limit int) (*GiftList, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultGiftListLimit
	}

	r := api.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit))

	return decode[GiftList](c.do(r, http.MethodGet, "/api/gifts"))
}

// UpdateGiftStatus sets a gift's status. The status string is not checked
// locally.
func (c *Client) UpdateGiftStatus(ctx context.Context, update StatusUpdate) (json.RawMessage, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().SetContext(ctx).SetBody(update)

	return opaque(c.do(r, http.MethodPut, "/api/gift-status"))
}

func (c *Client) GiftStatus(ctx context.Context, giftID string) (*GiftStatusResponse, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().
		SetContext(ctx).
		SetPathParam("id", giftID)

	return decode[GiftStatusResponse](c.do(r, http.MethodGet, "/api/gift-status/{id}"))
}

func (c *Client) VerifyGift(ctx context.Context, giftID string, verified bool) (json.RawMessage, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().
		SetContext(ctx).
		SetBody(VerifyGiftRequest{GiftID: giftID, Verified: verified})

	return opaque(c.do(r, http.MethodPost, "/api/verify-gift"))
}
