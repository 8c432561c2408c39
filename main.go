package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/nstehr/arras/agent"
	"github.com/nstehr/arras/ipc"
)

const banner = `
 █████╗ ██████╗ ██████╗  █████╗ ███████╗
██╔══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝
███████║██████╔╝██████╔╝███████║███████╗
██╔══██║██╔══██╗██╔══██╗██╔══██║╚════██║
██║  ██║██║  ██║██║  ██║██║  ██║███████║
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝

Behavior-Tree RTS Faction Intelligence`

func main() {
	socketPath := flag.String("socket", "/tmp/arras.sock", "unix socket the game connects to")
	profilePath := flag.String("profile", "", "YAML difficulty profile (default: built-in balanced)")
	debug := flag.Bool("debug", false, "enable debug logging and periodic tree dumps")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	fmt.Println(banner)
	slog.Info("starting arras")

	profile := agent.DefaultProfile()
	if *profilePath != "" {
		loaded, err := agent.LoadProfile(*profilePath)
		if err != nil {
			slog.Error("failed to load profile", "path", *profilePath, "error", err)
			os.Exit(1)
		}
		profile = loaded
		slog.Info("profile loaded", "name", profile.Name, "path", *profilePath)
	}

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(*socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", *socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", *socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(*socketPath)

	slog.Info("listening on domain socket", "path", *socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go handleConn(conn, profile, *debug)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func handleConn(conn net.Conn, profile agent.Profile, debug bool) {
	c := ipc.NewConnection(conn, nil)
	a := agent.New(c, profile, debug)
	c.RegisterHandler(ipc.TypeHello, a.HandleHello)
	c.RegisterHandler(ipc.TypeGameState, a.HandleGameState)
	c.ReadLoop()
}
