package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/peteraglen/gift-sender-go-client"
	"github.com/peteraglen/gift-sender-go-client/config"
)

var (
	baseURL   string
	storeKind string
	debug     bool

	cfg *config.Config
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "giftctl",
		Short:         "Command-line client for the gift-sending API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			loaded, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("base-url") {
				loaded.BaseURL = baseURL
			}
			if flags.Changed("store") {
				loaded.CredentialStore = config.StoreKind(storeKind)
			}
			if flags.Changed("debug") {
				loaded.Debug = debug
			}

			if err := loaded.Validate(); err != nil {
				return err
			}

			if loaded.Debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			cfg = loaded

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the gift API (default $GIFTSENDER_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Credential store: file, memory or redis (default $GIFTSENDER_CREDENTIAL_STORE)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Dump HTTP requests and responses")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newCreateUserCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newSendGiftCmd())
	rootCmd.AddCommand(newBulkSendCmd())
	rootCmd.AddCommand(newListGiftsCmd())
	rootCmd.AddCommand(newCampaignGiftsCmd())
	rootCmd.AddCommand(newSetStatusCmd())
	rootCmd.AddCommand(newGetStatusCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newDownloadTemplateCmd())
	rootCmd.AddCommand(newUploadExcelCmd())
	rootCmd.AddCommand(newEmailConfigCmd())
	rootCmd.AddCommand(newAPIKeyCmd())

	return rootCmd
}

// withClient opens the credential store, connects a client and runs fn.
func withClient(ctx context.Context, fn func(*client.Client) error) error {
	store, closer, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	notifier := client.NotifierFunc(func(_ context.Context, n client.Notification) {
		log.Warn().Str("kind", n.Kind.String()).Msg(n.Message)
	})

	c := client.New(cfg.BaseURL,
		client.WithTimeout(cfg.Timeout),
		client.WithCredentialStore(store),
		client.WithNotifier(notifier),
		client.WithRequestLogger(client.NewZerologLogger(log.Logger)),
		client.WithDebug(cfg.Debug),
	)
	defer func() { _ = c.Close() }()

	if err := c.Connect(ctx); err != nil {
		return err
	}

	return fn(c)
}

// withStore runs fn against the configured credential store without
// contacting the backend. GIFTSENDER_API_KEY does not apply here.
func withStore(fn func(client.CredentialStore) error) error {
	store, closer, err := cfg.OpenConfiguredStore()
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	return fn(store)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if raw, ok := v.(json.RawMessage); ok {
		if len(raw) == 0 {
			_, err := fmt.Fprintln(w, "{}")
			return err
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			return enc.Encode(decoded)
		}
		_, err := fmt.Fprintln(w, string(raw))
		return err
	}

	return enc.Encode(v)
}
