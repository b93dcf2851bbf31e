package client

import (
	"context"
	"net/http"
)

// CampaignGifts returns every gift associated with a campaign.
func (c *Client) CampaignGifts(ctx context.Context, campaignID string) (*CampaignResponse, error) {
	api, _, err := c.transports()
	if err != nil {
		return nil, err
	}

	r := api.R().
		SetContext(ctx).
		SetPathParam("id", campaignID)

	return decode[CampaignResponse](c.do(r, http.MethodGet, "/api/campaign-gifts/{id}"))
}
