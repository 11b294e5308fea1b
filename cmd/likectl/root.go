package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"like-service/internal/clientstate"
	"like-service/internal/likeclient"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const clientKey ctxKey = "likeclient"

type rootOptions struct {
	url     string
	state   string
	window  time.Duration
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "likectl",
		Short: "Read and bump the site like counter",
		Example: `	likectl --url https://example.com count
	likectl --url https://example.com like
	likectl like --force`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			clientOpts := []likeclient.Option{
				likeclient.WithHTTPClient(&http.Client{Timeout: opts.timeout}),
			}
			if opts.verbose {
				clientOpts = append(clientOpts, likeclient.WithLogger(newCLILogger(cmd.ErrOrStderr()).Sugar()))
			}
			c := likeclient.New(opts.url, clientOpts...)
			cmd.SetContext(context.WithValue(cmd.Context(), clientKey, c))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.url, "url", getenv("LIKE_URL", "http://localhost:8080"), "site base URL (or LIKE_URL)")
	root.PersistentFlags().StringVar(&opts.state, "state", getenv("LIKE_STATE", ""), "like marker file (or LIKE_STATE)")
	root.PersistentFlags().DurationVar(&opts.window, "window", clientstate.DefaultWindow, "how long a like suppresses the next one")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "per-request HTTP timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log retries to stderr")

	root.AddCommand(newCountCmd())
	root.AddCommand(newLikeCmd(opts))
	return root
}

// newCLILogger writes human-readable debug logs to w.
func newCLILogger(w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func getClient(cmd *cobra.Command) *likeclient.Client {
	c, _ := cmd.Context().Value(clientKey).(*likeclient.Client)
	return c
}

func (o *rootOptions) marker() (clientstate.Marker, error) {
	path := o.state
	if path == "" {
		p, err := clientstate.DefaultPath()
		if err != nil {
			return clientstate.Marker{}, err
		}
		path = p
	}
	return clientstate.Marker{Path: path, Window: o.window}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
