package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/revulabs/revu/internal/api"
	"github.com/revulabs/revu/internal/cache"
	"github.com/revulabs/revu/internal/collect"
	"github.com/revulabs/revu/internal/config"
	"github.com/revulabs/revu/internal/gitx"
	"github.com/revulabs/revu/internal/logging"
	"github.com/revulabs/revu/internal/output"
	"github.com/revulabs/revu/internal/redact"
)

// Shared review flags
var (
	flagTarget       string
	flagIgnore       string
	flagUntracked    bool
	flagContributors bool
	flagContextLines int
	flagMaxLines     int
	flagWorkers      int
	flagEndpoint     string
	flagTicket       string
	flagFormat       string
	flagOut          string
	flagNoRedact     bool
	flagNoCache      bool
	flagDryRun       bool
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagContextLines, "context-lines", 0, "Unchanged context lines around each hunk")
	cmd.Flags().IntVar(&flagMaxLines, "max-lines", 0, "Per-file line budget for diffs and content")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent per-file fetches")
	cmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Review API endpoint")
	cmd.Flags().StringVar(&flagTicket, "ticket", "", "Ticket tag to attach to the payload")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the payload instead of submitting it")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagEndpoint != "" {
		m["endpoint"] = flagEndpoint
	}
	if flagTicket != "" {
		m["ticketSystem"] = flagTicket
	}
	if flagContextLines > 0 {
		m["contextLines"] = fmt.Sprintf("%d", flagContextLines)
	}
	if flagMaxLines > 0 {
		m["maxLines"] = fmt.Sprintf("%d", flagMaxLines)
	}
	if flagWorkers > 0 {
		m["workers"] = fmt.Sprintf("%d", flagWorkers)
	}
	if flagIgnore != "" {
		m["ignore"] = flagIgnore
	}
	return m
}

func newCollector(cfg config.Config, log *zap.Logger) *collect.Collector {
	repo := gitx.NewRepo(gitx.NewExecRunner(), "")
	return collect.New(repo, log, collect.Options{
		ContextLines:     cfg.ContextLines,
		MaxLines:         cfg.MaxLines,
		Workers:          cfg.Workers,
		TicketTag:        cfg.TicketSystem,
		WithContributors: flagContributors,
	})
}

// submitPayload runs the back half of every review command: redaction,
// cache lookup, submission, rendering.
func submitPayload(ctx context.Context, payload *collect.ReviewPayload, cfg config.Config, log *zap.Logger) {
	if cfg.Redact && !flagNoRedact {
		redact.Payload(payload)
	} else if flagNoRedact {
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	if flagDryRun {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	store, err := cache.New(cfg.Cache.Enabled && !flagNoCache, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		log.Warn("cache unavailable", zap.Error(err))
		store, _ = cache.New(false, "", 0)
	}

	key := cache.Key(body)
	if cached, ok := store.Get(key); ok {
		log.Debug("cache hit", zap.String("key", key))
		result, err := api.ParseResult([]byte(cached))
		if err == nil {
			renderResult(result)
			return
		}
		log.Warn("discarding bad cache entry", zap.Error(err))
	}

	client, err := api.NewClient(cfg.Endpoint, cfg.APIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitAuthError
		return
	}

	result, err := client.Submit(ctx, payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if api.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return
	}

	if err := store.Put(key, string(result.Raw)); err != nil {
		log.Warn("caching response failed", zap.Error(err))
	}

	renderResult(result)
}

func renderResult(result *api.ReviewResult) {
	if err := output.WriteResult(result, flagFormat, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
	}
}

// runCollect wraps a collector call with the shared error translation:
// no-changes exits cleanly, bad branch input is a usage error, everything
// else is a runtime failure.
func runCollect(fn func(ctx context.Context, c *collect.Collector, cfg config.Config) (*collect.ReviewPayload, error)) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	log := logging.FromEnv()
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	payload, err := fn(ctx, newCollector(cfg, log), cfg)
	if err != nil {
		switch {
		case errors.Is(err, collect.ErrNoChanges):
			fmt.Fprintln(os.Stderr, "No changes to review.")
		case collect.IsBranchNotFound(err), errors.Is(err, collect.ErrForkPointNotFound):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
		return nil
	}

	submitPayload(ctx, payload, cfg, log)
	return nil
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review local changes",
	Long:  "Review local changes with the review service. Use subcommands to pick what to review.",
}

var reviewBranchCmd = &cobra.Command{
	Use:   "branch",
	Short: "Review commits since the fork point of the current branch",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(func(ctx context.Context, c *collect.Collector, cfg config.Config) (*collect.ReviewPayload, error) {
			return c.CollectAgainstBase(ctx, flagTarget, cfg.Ignore)
		})
	},
}

var reviewStagedCmd = &cobra.Command{
	Use:   "staged",
	Short: "Review staged changes (index vs HEAD)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(func(ctx context.Context, c *collect.Collector, cfg config.Config) (*collect.ReviewPayload, error) {
			return c.CollectUncommitted(ctx, collect.ModeStaged, flagUntracked)
		})
	},
}

var reviewUnstagedCmd = &cobra.Command{
	Use:   "unstaged",
	Short: "Review unstaged changes (working tree vs index)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(func(ctx context.Context, c *collect.Collector, cfg config.Config) (*collect.ReviewPayload, error) {
			return c.CollectUncommitted(ctx, collect.ModeUnstaged, flagUntracked)
		})
	},
}

var reviewAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Review all uncommitted changes, staged and unstaged",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(func(ctx context.Context, c *collect.Collector, cfg config.Config) (*collect.ReviewPayload, error) {
			return c.CollectUncommitted(ctx, collect.ModeAll, flagUntracked)
		})
	},
}

func init() {
	reviewCmd.AddCommand(reviewBranchCmd)
	reviewCmd.AddCommand(reviewStagedCmd)
	reviewCmd.AddCommand(reviewUnstagedCmd)
	reviewCmd.AddCommand(reviewAllCmd)

	for _, cmd := range []*cobra.Command{
		reviewBranchCmd,
		reviewStagedCmd,
		reviewUnstagedCmd,
		reviewAllCmd,
	} {
		addReviewFlags(cmd)
	}

	// Branch-comparison flags
	reviewBranchCmd.Flags().StringVar(&flagTarget, "target", "", "Target branch to diff against (default: auto-detect fork point)")
	reviewBranchCmd.Flags().StringVar(&flagIgnore, "ignore", "", "Ignore globs, comma-separated (e.g. 'dist/**,**/*.lock')")
	reviewBranchCmd.Flags().BoolVar(&flagContributors, "contributors", false, "Attach author and contributor stats")

	// Uncommitted-review flags
	for _, cmd := range []*cobra.Command{reviewStagedCmd, reviewUnstagedCmd, reviewAllCmd} {
		cmd.Flags().BoolVar(&flagUntracked, "include-untracked", false, "Fold untracked files in as additions")
	}
}
