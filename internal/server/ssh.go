// Package server provides SSH server functionality for gridsnap, so a
// layout can be edited from a remote machine.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"

	"github.com/gridsnap/gridsnap/internal/app"
	"github.com/gridsnap/gridsnap/internal/config"
	"github.com/gridsnap/gridsnap/internal/store"
	"github.com/gridsnap/gridsnap/internal/theme"
)

// Config holds configuration for the SSH server.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start initializes and runs the SSH server until the context is cancelled.
// Every connection gets its own editor; they share the store on disk.
func Start(ctx context.Context, cfg Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "gridsnap_host_key")
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

	go func() {
		log.Info("Starting SSH server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Error("SSH server error", "err", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down SSH server")
	return server.Shutdown(ctx)
}

// teaHandler creates an editor instance for each SSH session.
func teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	_, _, active := sshSession.Pty()
	if !active {
		return nil, nil
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config for SSH session, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}
	if err := theme.Initialize(userConfig.Appearance.Theme); err != nil {
		log.Warn("Could not initialize theme", "err", err)
	}

	editor := app.New(userConfig, store.New())
	return editor, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
