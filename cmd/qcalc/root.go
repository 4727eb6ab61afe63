package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/exercises-service/internal/adapters/clients"
	"github.com/jsamuelsen/exercises-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/platform/config"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

type options struct {
	profile  string
	url      string
	timeout  time.Duration
	attempts int
	verbose  bool
}

// newClient is replaced in tests.
var newClient = func(o *options, logger *slog.Logger) (ports.QuaternionClient, error) {
	cfg, err := config.Load(o.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cc := clients.ConfigFrom(cfg.Client, cfg.Services.Calculator)
	cc.Logger = logger
	if o.url != "" {
		cc.BaseURL = o.url
	}
	if o.timeout > 0 {
		cc.Timeout = o.timeout
	}
	if o.attempts > 0 {
		cc.Retry.MaxAttempts = o.attempts
	}

	client, err := clients.New(cc)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}
	return acl.NewQuaternionClient(client, logger), nil
}

func newRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "qcalc [flags] add|mul|conjugate a,b,c,d [a,b,c,d ...]",
		Short: "Evaluate a quaternion expression on the exercises service",
		Example: `  qcalc mul 0,1,0,0 0,0,1,0      # prints k
  qcalc add 1,2,3,4 1,-2,0,0     # prints 2+3j+4k
  qcalc conjugate 1,2,3,4        # prints 1-2i-3j-4k
  qcalc --url http://calc:8080 add -1,0,0,0 1,1`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	// Flags go before the operator; everything after it is an operand, so
	// "-1,2,3,4" is not read as a shorthand flag.
	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&o.profile, "profile", envOr("APP_ENVIRONMENT", "local"), "config profile to load")
	flags.StringVar(&o.url, "url", "", "calculator base URL (overrides services.calculator.base_url)")
	flags.DurationVar(&o.timeout, "timeout", 0, "per-attempt timeout (overrides client.timeout)")
	flags.IntVar(&o.attempts, "attempts", 0, "attempts per request (overrides client.retry.max_attempts)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log requests to stderr")

	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	op := domain.Operator(args[0])

	operands := make([]domain.Quaternion, 0, len(args)-1)
	for _, arg := range args[1:] {
		q, err := parseQuaternion(arg)
		if err != nil {
			return err
		}
		operands = append(operands, q)
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	client, err := newClient(o, logger)
	if err != nil {
		return err
	}

	q, err := client.Evaluate(cmd.Context(), op, operands)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), q)
	return err
}

// parseQuaternion reads "a,b,c,d". Missing trailing coefficients are zero,
// so "1" and "1,2" are accepted.
func parseQuaternion(s string) (domain.Quaternion, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 4 {
		return domain.Quaternion{}, fmt.Errorf("operand %q: want at most 4 coefficients, got %d", s, len(parts))
	}

	var c [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.Quaternion{}, fmt.Errorf("operand %q: %w", s, err)
		}
		c[i] = v
	}

	return domain.New(c[0], c[1], c[2], c[3]), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return logging.NewWithWriter(&logging.Config{Level: "debug", Format: "pretty", Service: "qcalc"}, w)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
