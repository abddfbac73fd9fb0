package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/muzzletov/tagpath"
	"github.com/muzzletov/tagpath/internal/config"
	"github.com/muzzletov/tagpath/internal/logger"
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
	logs    = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "tagpath",
	Short: "Answer attribute queries against tag markup",
	Long: `tagpath reads a header line "<lines> <queries>", that many lines of markup,
then one "a.b.c~attr" query per line, and prints one answer per query.`,
	Args:              cobra.NoArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runBatch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject closing tags whose name differs from the opening tag")
	rootCmd.PersistentFlags().Int("max-depth", tagpath.DefaultMaxDepth, "Maximum tag nesting depth")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("user-agent", "tagpath/1.0", "User agent for documents fetched over http")
	rootCmd.PersistentFlags().String("cookie-jar", "", "File that keeps cookies between fetches")

	_ = viper.BindPFlag(config.KeyStrict, rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag(config.KeyMaxDepth, rootCmd.PersistentFlags().Lookup("max-depth"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyUserAgent, rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag(config.KeyCookieJar, rootCmd.PersistentFlags().Lookup("cookie-jar"))
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := viper.GetViper()
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}

	loaded, err := config.Load(v)
	if err != nil {
		return err
	}

	cfg = loaded
	logs = logger.NewWithLevel(cmd.ErrOrStderr(), logger.ParseLevel(cfg.LogLevel))
	return nil
}

func parseOptions() []tagpath.Option {
	opts := []tagpath.Option{
		tagpath.WithMaxDepth(cfg.MaxDepth),
		tagpath.WithLogger(logs.Logger),
	}
	if cfg.Strict {
		opts = append(opts, tagpath.WithStrictClosing())
	}
	return opts
}

func newClient() (*tagpath.WebClient, error) {
	c := tagpath.NewClient()
	c.SetUserAgent(cfg.UserAgent)
	c.SetChunkSize(cfg.ChunkSize)

	if cfg.CookieJar != "" {
		if err := c.Jar().Load(cfg.CookieJar); err != nil {
			return nil, fmt.Errorf("loading cookie jar: %w", err)
		}
	}
	return c, nil
}

// loadDocument parses the document named by location ("-", a URL or a path).
func loadDocument(cmd *cobra.Command, location string) (*tagpath.Document, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := tagpath.Load(cmd.Context(), client, location, cmd.InOrStdin(), parseOptions()...)
	if err != nil {
		var se *tagpath.SyntaxError
		if errors.As(err, &se) {
			logs.SyntaxFailed(location, se.Offset, err)
			return nil, err
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("document %s does not exist", location)
		}
		return nil, fmt.Errorf("loading %s: %w", location, err)
	}
	logs.DocumentLoaded(location, doc.Size(), doc.Len()-1, time.Since(start))

	if cfg.CookieJar != "" {
		if err := client.Jar().Save(cfg.CookieJar); err != nil {
			logs.Warn("failed to save cookie jar", "path", cfg.CookieJar, "error", err)
		}
	}
	return doc, nil
}
