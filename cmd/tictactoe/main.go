package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	grpcAddr   string
	httpAddr   string

	rootCmd = &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe with move history and time travel",
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPlay, // Defined in play.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve game sessions over gRPC and REST",
		Args:  cobra.NoArgs,
		RunE:  runServe, // Defined in serve.go
	}
)

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file (default: environment only)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level, overrides the config")
	serveCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address, overrides the config")
	serveCmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP/REST listen address, overrides the config")

	rootCmd.AddCommand(playCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
