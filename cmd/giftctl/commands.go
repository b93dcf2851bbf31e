package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/peteraglen/gift-sender-go-client"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the gift API is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.HealthCheck(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
}

func newCreateUserCmd() *cobra.Command {
	var req client.CreateUserRequest
	var save bool

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				user, err := c.CreateUser(cmd.Context(), req)
				if err != nil {
					return err
				}

				if save && user.APIKey != "" {
					if err := c.SetAPIKey(cmd.Context(), user.APIKey); err != nil {
						return fmt.Errorf("failed to store API key: %w", err)
					}
					log.Info().Str("user_id", user.ID).Msg("API key stored")
				}

				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "User email")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "User full name")
	cmd.Flags().StringVar(&req.CompanyName, "company-name", "", "Company name (optional)")
	cmd.Flags().BoolVar(&save, "save-key", true, "Store the returned API key in the credential store")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the profile of the stored API key's owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				user, err := c.Profile(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			})
		},
	}
}

func newSendGiftCmd() *cobra.Command {
	var req client.GiftRequest

	cmd := &cobra.Command{
		Use:   "send-gift",
		Short: "Initiate a single gift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.InitiateGift(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&req.RecipientEmail, "email", "", "Recipient email")
	cmd.Flags().StringVar(&req.RecipientName, "name", "", "Recipient name")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "Gift amount")
	cmd.Flags().StringVar(&req.Currency, "currency", "", "Currency code")
	cmd.Flags().StringVar(&req.CampaignID, "campaign-id", "", "Campaign to associate the gift with")
	cmd.Flags().StringVar(&req.Message, "message", "", "Message for the recipient")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newBulkSendCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk-send",
		Short: "Initiate gifts listed in a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			var req client.BulkGiftRequest
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("failed to parse %s: %w", file, err)
			}

			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.BulkInitiateGifts(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON bulk gift request")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newListGiftsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list-gifts",
		Short: "List recent gifts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.ListGifts(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return renderGifts(cmd.OutOrStdout(), res.Gifts)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", client.DefaultGiftListLimit, "Maximum number of gifts to list")

	return cmd
}

func newCampaignGiftsCmd() *cobra.Command {
	var campaignID string

	cmd := &cobra.Command{
		Use:   "campaign-gifts",
		Short: "List the gifts of a campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.CampaignGifts(cmd.Context(), campaignID)
				if err != nil {
					return err
				}
				return renderGifts(cmd.OutOrStdout(), res.Gifts)
			})
		},
	}

	cmd.Flags().StringVar(&campaignID, "campaign-id", "", "Campaign ID")
	_ = cmd.MarkFlagRequired("campaign-id")

	return cmd
}

func newSetStatusCmd() *cobra.Command {
	var update client.StatusUpdate
	var status string

	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Update the status of a gift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			update.Status = client.GiftStatus(status)

			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.UpdateGiftStatus(cmd.Context(), update)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&update.GiftID, "gift-id", "", "Gift ID")
	cmd.Flags().StringVar(&status, "status", "", "New status")
	_ = cmd.MarkFlagRequired("gift-id")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newGetStatusCmd() *cobra.Command {
	var giftID string

	cmd := &cobra.Command{
		Use:   "get-status",
		Short: "Show the status of a gift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.GiftStatus(cmd.Context(), giftID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&giftID, "gift-id", "", "Gift ID")
	_ = cmd.MarkFlagRequired("gift-id")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var giftID string
	var verified bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Mark a gift as verified or unverified",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.VerifyGift(cmd.Context(), giftID, verified)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&giftID, "gift-id", "", "Gift ID")
	cmd.Flags().BoolVar(&verified, "verified", true, "Verification result")
	_ = cmd.MarkFlagRequired("gift-id")

	return cmd
}

func newDownloadTemplateCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "download-template",
		Short: "Download the bulk gift Excel template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				data, err := c.DownloadExcelTemplate(cmd.Context())
				if err != nil {
					return err
				}

				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", out, err)
				}

				log.Info().Str("path", out).Int("bytes", len(data)).Msg("template saved")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "gift_template.xlsx", "Output path")

	return cmd
}

func newUploadExcelCmd() *cobra.Command {
	var path, campaignID string

	cmd := &cobra.Command{
		Use:   "upload-excel",
		Short: "Upload a filled-in Excel workbook for a campaign",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.UploadExcel(cmd.Context(), client.UploadedFile{
					FileName:   filepath.Base(path),
					Content:    f,
					CampaignID: campaignID,
				})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	cmd.Flags().StringVar(&path, "file", "", "Path to the workbook")
	cmd.Flags().StringVar(&campaignID, "campaign-id", "", "Campaign ID")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("campaign-id")

	return cmd
}

func newEmailConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email-config",
		Short: "Manage the mail-sending configuration",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the current email configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.EmailConfig(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}

	var setCfg client.EmailConfig
	set := &cobra.Command{
		Use:   "set",
		Short: "Store the email configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.UpdateEmailConfig(cmd.Context(), setCfg)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	set.Flags().StringVar(&setCfg.ResendAPIKey, "resend-api-key", "", "Resend API key")
	set.Flags().StringVar(&setCfg.FromEmail, "from-email", "", "Sender address")
	set.Flags().StringVar(&setCfg.SendingDomain, "sending-domain", "", "Sending domain (optional)")
	_ = set.MarkFlagRequired("resend-api-key")
	_ = set.MarkFlagRequired("from-email")

	var testCfg client.EmailConfigTest
	test := &cobra.Command{
		Use:   "test",
		Short: "Send a test message with the given or stored configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withClient(cmd.Context(), func(c *client.Client) error {
				res, err := c.TestEmailConfig(cmd.Context(), testCfg)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	test.Flags().StringVar(&testCfg.ResendAPIKey, "resend-api-key", "", "Resend API key")
	test.Flags().StringVar(&testCfg.FromEmail, "from-email", "", "Sender address")
	test.Flags().StringVar(&testCfg.SendingDomain, "sending-domain", "", "Sending domain")
	test.Flags().StringVar(&testCfg.TestEmail, "to", "", "Recipient of the test message")

	cmd.AddCommand(get, set, test)

	return cmd
}

func newAPIKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-key",
		Short: "Manage the stored API key",
	}

	set := &cobra.Command{
		Use:   "set <key>",
		Short: "Store an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s client.CredentialStore) error {
				return s.Set(cmd.Context(), args[0])
			})
		},
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the stored API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(s client.CredentialStore) error {
				key, ok, err := s.Get(cmd.Context())
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("no API key stored")
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
				return err
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(func(s client.CredentialStore) error {
				return s.Remove(cmd.Context())
			})
		},
	}

	cmd.AddCommand(set, get, remove)

	return cmd
}

func renderGifts(w io.Writer, gifts []client.Gift) error {
	data := make([][]string, 0, len(gifts))
	for _, g := range gifts {
		data = append(data, []string{
			g.GiftID,
			g.RecipientEmail,
			strconv.FormatFloat(g.Amount, 'f', 2, 64) + " " + g.Currency,
			g.CampaignID,
			string(g.Status),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Gift ID", "Recipient", "Amount", "Campaign", "Status")
	if err := table.Bulk(data); err != nil {
		return err
	}

	return table.Render()
}
