package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/Gaurav-Gosain/folios/internal/config"
	"github.com/charmbracelet/ssh"
)

// shutdownTimeout bounds how long a stopping server waits for sessions.
const shutdownTimeout = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Host    string
	Port    string
	KeyPath string // generated on first start when missing
}

// StartSSHServer serves desktops over SSH until ctx is cancelled.
func StartSSHServer(ctx context.Context, cfg SSHServerConfig, desktops *Desktops) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		path, err := config.GetHostKeyPath()
		if err != nil {
			return fmt.Errorf("failed to determine host key path: %w", err)
		}
		hostKeyPath = path
	}

	teaHandler := func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, active := s.Pty()
		if !active {
			wish.Fatalln(s, "folios needs an interactive terminal, try ssh -t")
			return nil, nil
		}
		return desktops.New(sessionSource(s), pty.Window.Width, pty.Window.Height)
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		desktops.Logger.Info("starting SSH server", "addr", server.Addr, "host_key", hostKeyPath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	desktops.Logger.Info("shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sessionSource labels messages sent from an ssh session.
func sessionSource(s ssh.Session) string {
	host := s.RemoteAddr().String()
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if s.User() == "" {
		return "ssh:" + host
	}
	return "ssh:" + s.User() + "@" + host
}
