// Package sshserve exposes the game over SSH so players can connect
// with a plain terminal.
package sshserve

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bubbletea "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyonix/typestorm/internal/game"
	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/store"
	"github.com/halcyonix/typestorm/internal/trivia"
	"github.com/halcyonix/typestorm/internal/tui"
	"github.com/halcyonix/typestorm/internal/words"
)

const shutdownTimeout = 5 * time.Second

// Config holds the SSH server settings.
type Config struct {
	Host        string
	Port        string
	HostKeyPath string
	Game        model.GameConfig
}

// Serve runs the SSH game server until the context is canceled. Each
// connection gets its own session; scores land in the shared store.
func Serve(ctx context.Context, cfg Config, st *store.Store) error {
	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithMiddleware(
			bubbletea.Middleware(sessionHandler(cfg, st)),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Keep input latency down for fast typing.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKeyPath))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting SSH server", "host", cfg.Host, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// sessionHandler builds a fresh play session for every SSH connection.
// Remote sessions have no audio; the player name defaults to the SSH
// user.
func sessionHandler(cfg Config, st *store.Store) bubbletea.Handler {
	return func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, ok := sess.Pty()
		if !ok {
			log.Warn("rejected session without PTY", "user", sess.User())
			return nil, nil
		}
		log.Info("new game session",
			"user", sess.User(),
			"term", pty.Term,
			"size", pty.Window)

		gameCfg := cfg.Game
		if gameCfg.Player == "" {
			gameCfg.Player = sess.User()
		}
		source, err := words.New(gameCfg.Mode, gameCfg.Language, nil)
		if err != nil {
			log.Error("failed to load words", "err", err)
			return nil, nil
		}
		bank, err := trivia.Load(nil)
		if err != nil {
			log.Error("failed to load trivia", "err", err)
			return nil, nil
		}
		session := game.NewSession(gameCfg, source, bank)
		m := tui.NewModel(gameCfg, session, st, nil)
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}
}
