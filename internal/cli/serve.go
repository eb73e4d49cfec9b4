package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/session"
	"github.com/matzehuels/folio/pkg/settings"
	"github.com/matzehuels/folio/pkg/site"
)

const (
	shutdownTimeout = 5 * time.Second
	cleanupInterval = time.Minute
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noStars bool
	)

	cmd := &cobra.Command{
		Use:   "serve [config]",
		Short: "Serve the portfolio as a paged web site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), args, addr, noStars)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings, :8080)")
	cmd.Flags().BoolVar(&noStars, "no-stars", false, "skip GitHub star lookups")
	return cmd
}

func (c *CLI) runServe(ctx context.Context, args []string, addr string, noStars bool) error {
	logger := loggerFromContext(ctx)
	s, err := c.loadSettings()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = s.Server.Addr
	}
	doc, err := c.loadDocument(ctx, args)
	if err != nil {
		return err
	}
	store := c.openCache(ctx, false)
	defer store.Close()

	var stars map[string]int
	if !noStars {
		prog := newProgress(logger)
		starsCtx, cancel := context.WithTimeout(ctx, starsTimeout)
		stars = c.fetchStars(starsCtx, doc, store, false)
		cancel()
		prog.done(fmt.Sprintf("Resolved stars for %d projects", len(stars)))
	}

	srv := site.New(doc, site.Config{
		Addr:       addr,
		SessionTTL: s.Server.SessionTTL,
		Sessions:   sessionStore(s, store),
		Stars:      stars,
		Logger:     logger,
	})
	go srv.CleanupSessions(ctx, cleanupInterval)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	printSuccess("Serving %s", doc.Title())
	printKeyValue("Address", serveURL(addr))
	printKeyValue("Sections", strings.Join(doc.ActiveSections(), ", "))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", "error", err)
		}
		return ctx.Err()
	}
}

// sessionStore shares sessions through the cache when it is a networked
// backend, so several server instances see the same visitors.
func sessionStore(s *settings.Settings, store cache.Cache) session.Store {
	switch s.Cache.Backend {
	case cache.BackendRedis, cache.BackendMongo:
		return session.NewCacheStore(store)
	default:
		return session.NewMemoryStore()
	}
}

func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
