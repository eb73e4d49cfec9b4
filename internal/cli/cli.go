package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/folio/pkg/buildinfo"
	"github.com/matzehuels/folio/pkg/cache"
	"github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/integrations/github"
	"github.com/matzehuels/folio/pkg/observability"
	"github.com/matzehuels/folio/pkg/profile"
	"github.com/matzehuels/folio/pkg/settings"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "folio"

	// defaultDocument is the portfolio document read when --config is unset.
	defaultDocument = "profile.yaml"

	// starsTimeout bounds star lookups for commands that only decorate
	// their output with them.
	starsTimeout = 15 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	document     string
	settingsPath string
	settings     *settings.Settings
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Folio presents a portfolio document as paged sections",
		Long: `Folio reads a portfolio document (YAML, TOML or JSON) and presents its
sections one page at a time: in the terminal, as a small web site, or as an
exported resume.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetNavigationHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			observability.SetHTTPHooks(logHooks{c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.document, "config", "c", defaultDocument, "portfolio document (yaml, toml or json)")
	root.PersistentFlags().StringVar(&c.settingsPath, "settings", settings.DefaultFile, "application settings file")

	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sectionsCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.starsCommand())
	root.AddCommand(c.themeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Loaders
// =============================================================================

// loadSettings reads the settings once per process.
func (c *CLI) loadSettings() (*settings.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	s, err := settings.Load(c.settingsPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("settings loaded", "summary", s.String())
	c.settings = s
	return s, nil
}

// documentPath prefers a positional argument over --config.
func (c *CLI) documentPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.document
}

// loadDocument parses the portfolio document and logs its warnings.
func (c *CLI) loadDocument(ctx context.Context, args []string) (*profile.Document, error) {
	logger := loggerFromContext(ctx)
	path := c.documentPath(args)

	doc, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range doc.Warnings {
		logger.Warn(errors.UserMessage(w))
	}
	logger.Debug("document loaded", "path", path, "sections", doc.ActiveSections())
	return doc, nil
}

// openCache opens the configured cache backend. Failures degrade to no
// caching rather than failing the command.
func (c *CLI) openCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	s, err := c.loadSettings()
	if err != nil {
		return cache.NewNullCache()
	}
	store, err := cache.Open(ctx, appName, s.Cache)
	if err != nil {
		loggerFromContext(ctx).Warn("cache unavailable", "error", err)
		return cache.NewNullCache()
	}
	return store
}

// fetchStars looks up star counts for the document's GitHub projects.
// Errors are logged and the counts that did resolve are returned.
func (c *CLI) fetchStars(ctx context.Context, doc *profile.Document, store cache.Cache, refresh bool) map[string]int {
	logger := loggerFromContext(ctx)
	s, err := c.loadSettings()
	if err != nil {
		logger.Warn("settings unavailable", "error", err)
		return nil
	}
	if s.GitHub.Disabled {
		return nil
	}

	urls := make([]string, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		urls = append(urls, p.URL)
	}
	client := github.NewClient(s.GitHub.Token, store, s.Cache.TTL)
	stars, errs := client.StarsForProjects(ctx, urls, s.GitHub.Concurrency, refresh)
	for _, err := range errs {
		logger.Debug("star lookup failed", "error", err)
	}
	return stars
}
