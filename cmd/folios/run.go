package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/folios/internal/app"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/Gaurav-Gosain/folios/internal/contact"
	"github.com/Gaurav-Gosain/folios/internal/content"
	"github.com/Gaurav-Gosain/folios/internal/input"
	"github.com/Gaurav-Gosain/folios/internal/logging"
	"github.com/Gaurav-Gosain/folios/internal/server"
	"github.com/Gaurav-Gosain/folios/internal/theme"
	"github.com/charmbracelet/log"
)

func overrides() config.Overrides {
	return config.Overrides{
		Theme:           themeName,
		BorderStyle:     borderStyle,
		TaskbarPosition: taskbarPosition,
		ASCIIOnly:       asciiOnly,
		NoCodeRain:      noCodeRain,
		NoAnimations:    noAnimations,
	}
}

// environment is everything a desktop needs besides its size.
type environment struct {
	config  *config.UserConfig
	profile *content.Profile
	cache   *content.Cache
	inbox   *contact.Inbox
	logger  *log.Logger
}

func (e *environment) Close() {
	st := e.cache.Stats()
	e.logger.Debug("render cache", "size", st.Size, "hits", st.Hits, "misses", st.Misses)
	if e.inbox != nil {
		_ = e.inbox.Close()
	}
}

// loadEnvironment reads the configuration, profile and inbox. Failures that
// leave the desktop usable are logged instead of returned.
func loadEnvironment(logger *log.Logger) *environment {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	config.ApplyOverrides(userConfig, overrides())

	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		logger.Warn("theme", "err", err)
	}

	profilePath := userConfig.Contact.ProfilePath
	if profilePath == "" {
		if p, err := config.GetProfilePath(); err == nil {
			profilePath = p
		}
	}
	profile, err := content.LoadProfile(profilePath)
	if err != nil {
		logger.Warn("failed to load profile, using the built-in one", "path", profilePath, "err", err)
		profile = content.DefaultProfile()
	}

	cache, err := content.NewCache(content.DefaultCacheSize)
	if err != nil {
		logger.Warn("rendering without a cache", "err", err)
	}

	env := &environment{
		config:  userConfig,
		profile: profile,
		cache:   cache,
		logger:  logger,
	}

	path, err := resolveInboxPath(userConfig)
	if err != nil {
		logger.Warn("contact form disabled", "err", err)
		return env
	}
	inbox, err := contact.OpenInbox(path)
	if err != nil {
		logger.Warn("contact form disabled", "path", path, "err", err)
		return env
	}
	logger.Debug("inbox opened", "path", path)
	env.inbox = inbox
	return env
}

func resolveInboxPath(cfg *config.UserConfig) (string, error) {
	if inboxPath != "" {
		return inboxPath, nil
	}
	if cfg.Contact.InboxPath != "" {
		return cfg.Contact.InboxPath, nil
	}
	path, err := config.GetInboxPath()
	if err != nil {
		return "", fmt.Errorf("could not determine inbox path: %w", err)
	}
	return path, nil
}

func runLocal() error {
	logger, closer, err := logging.OpenFile(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	env := loadEnvironment(logger)
	defer env.Close()

	app.SetInputHandler(input.HandleInput)

	desktop := app.New(app.Options{
		Config:  env.config,
		Profile: env.profile,
		Cache:   env.cache,
		Inbox:   env.inbox,
		Logger:  logger,
		Source:  "local",
	})

	p := tea.NewProgram(
		desktop,
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
		tea.WithFilter(app.FilterMouseMotion),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if configPath, err := config.GetConfigPath(); err == nil {
		logger.Debug("watching configuration", "path", configPath)
		go func() {
			err := config.Watch(ctx, configPath, func(cfg *config.UserConfig, err error) {
				if cfg != nil {
					config.ApplyOverrides(cfg, overrides())
				}
				p.Send(app.ConfigReloadedMsg{Config: cfg, Err: err})
			})
			if err != nil {
				logger.Warn("config watcher stopped", "err", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// serverDesktops prepares the shared state for the ssh and web servers.
func serverDesktops() (*server.Desktops, func()) {
	logger := logging.New(os.Stderr, debugMode)
	env := loadEnvironment(logger)
	return &server.Desktops{
		Config:  env.config,
		Profile: env.profile,
		Cache:   env.cache,
		Inbox:   env.inbox,
		Logger:  logger,
	}, env.Close
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runSSHServer(parent context.Context, host, port, keyPath string) error {
	desktops, closeEnv := serverDesktops()
	defer closeEnv()

	ctx, cancel := signalContext(parent)
	defer cancel()

	cfg := server.SSHServerConfig{Host: host, Port: port, KeyPath: keyPath}
	if err := server.StartSSHServer(ctx, cfg, desktops); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}

func runWebServer(parent context.Context, host, port string, readOnly bool, maxConnections int) error {
	desktops, closeEnv := serverDesktops()
	defer closeEnv()

	ctx, cancel := signalContext(parent)
	defer cancel()

	cfg := server.WebServerConfig{
		Host:           host,
		Port:           port,
		ReadOnly:       readOnly,
		MaxConnections: maxConnections,
		Debug:          debugMode,
	}
	if err := server.StartWebServer(ctx, cfg, desktops); err != nil {
		return fmt.Errorf("web server error: %w", err)
	}
	return nil
}
