// Command conduitd runs the dual-cluster request router: a JSON-RPC HTTP
// server and a WebSocket pub/sub server, both splitting traffic between a
// chain cluster and an ephemeral delegation validator.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/synnergylabs/conduit/internal/delegation"
	"github.com/synnergylabs/conduit/internal/director/pubsub"
	"github.com/synnergylabs/conduit/internal/director/rpc"
	"github.com/synnergylabs/conduit/internal/guidepoint"
	"github.com/synnergylabs/conduit/internal/lockbox"
	"github.com/synnergylabs/conduit/internal/providers"
	"github.com/synnergylabs/conduit/pkg/config"
	"github.com/synnergylabs/conduit/pkg/log"
)

func main() {
	rootCmd := &cobra.Command{Use: "conduitd"}
	rootCmd.AddCommand(runCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var envName string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "start the dual-cluster request router",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(envName)
		},
	}
	cmd.Flags().StringVar(&envName, "env", "", "environment overlay to merge on top of the default config")
	return cmd
}

func run(envName string) error {
	cfg, err := config.Load(envName)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Setup(cfg.Logging.Level)
	logEntry := log.WithComponent("conduitd")

	chainAccounts := providers.NewRPCAccountProvider(cfg.Chain.HTTPURL, providers.DefaultCommitment, logEntry)
	ephemeralAccounts := providers.NewRPCAccountProvider(cfg.Ephemeral.HTTPURL, providers.DefaultCommitment, logEntry)

	parser := delegation.NewParser()
	chainResolver := lockbox.NewResolver(chainAccounts, parser, logEntry)
	guideResolver := guidepoint.NewResolver(ephemeralAccounts, logEntry)

	rpcServer := rpc.NewServer(cfg.Chain.HTTPURL, cfg.Ephemeral.HTTPURL, chainResolver, logEntry)
	pubsubDirector := pubsub.NewDirector(cfg.Chain.WSURL, cfg.Ephemeral.WSURL, guideResolver, logEntry)

	errCh := make(chan error, 2)

	go func() {
		logEntry.WithField("addr", cfg.RPC.ListenAddr).Info("starting JSON-RPC server")
		errCh <- http.ListenAndServe(cfg.RPC.ListenAddr, rpcServer)
	}()
	go func() {
		logEntry.WithField("addr", cfg.PubSub.ListenAddr).Info("starting pub/sub server")
		errCh <- http.ListenAndServe(cfg.PubSub.ListenAddr, http.HandlerFunc(pubsubDirector.ServeHTTP))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case sig := <-sigCh:
		logEntry.WithField("signal", sig.String()).Info("shutting down")
		return nil
	}
}
