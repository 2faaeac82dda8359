package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/sip"

	"github.com/Gaurav-Gosain/mapdesk/pkg/mapdesk"
)

// runServe exposes mapdesk as a web terminal. Every browser session
// gets its own desk sized to the session's PTY; the appearance flags
// apply to all sessions.
func runServe() error {
	log.Printf("Starting mapdesk web terminal server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		cancel()
	}()

	sessionOpts := []mapdesk.Option{
		mapdesk.WithTheme(themeName),
		mapdesk.WithASCIIOnly(asciiOnly),
		mapdesk.WithBorderStyle(borderStyle),
		mapdesk.WithDockPosition(dockPosition),
		mapdesk.WithHideWindowButtons(hideWindowButtons),
	}
	if len(autostartPanels) > 0 {
		sessionOpts = append(sessionOpts, mapdesk.WithAutostart(autostartPanels...))
	}

	server := sip.NewServer(sip.DefaultConfig())
	if err := server.Serve(ctx, func(sess sip.Session) (tea.Model, []tea.ProgramOption) {
		pty := sess.Pty()
		return mapdesk.NewForPTY(pty.Width, pty.Height, sessionOpts...), mapdesk.ProgramOptions()
	}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
