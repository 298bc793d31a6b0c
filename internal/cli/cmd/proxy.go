package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/netguard/internal/domain/entity"
	"github.com/bnema/netguard/internal/infrastructure/events"
	"github.com/bnema/netguard/internal/infrastructure/prompt"
	"github.com/bnema/netguard/internal/infrastructure/proxy"
	"github.com/bnema/netguard/internal/logging"
)

var (
	proxyListen        string
	proxyMetricsListen string
	proxyPartition     string
	proxyNoPrompt      bool
)

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Mediate a client's traffic through an HTTP proxy",
	Long: `Start an HTTP forward proxy that runs every request through the session's
pipeline. Point a browser or any HTTP client at it.

Plain HTTP requests get the full treatment: HTTPS upgrade, blocking, privacy
headers and download screening. HTTPS is tunnelled with CONNECT and only the
destination origin is judged; payloads are never inspected.

Permission prompts are shown in this terminal unless --no-prompt is set, in
which case undecided permissions are denied.

Examples:
  netguard proxy
  netguard proxy --listen 127.0.0.1:3128 --partition incognito
  curl -x http://127.0.0.1:8118 http://example.com/`,
	Args: cobra.NoArgs,
	RunE: runProxy,
}

func init() {
	proxyCmd.Flags().StringVarP(&proxyListen, "listen", "l", "", "proxy listen address (default: proxy.listen)")
	proxyCmd.Flags().StringVar(&proxyMetricsListen, "metrics-listen", "",
		"metrics and stats listen address (default: proxy.metrics_listen)")
	proxyCmd.Flags().StringVarP(&proxyPartition, "partition", "p", "", "session partition (default: proxy.partition)")
	proxyCmd.Flags().BoolVar(&proxyNoPrompt, "no-prompt", false, "deny undecided permissions instead of asking")
	rootCmd.AddCommand(proxyCmd)
}

func runProxy(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := a.Config.Get()
	listen := flagOr(proxyListen, cfg.Proxy.Listen)
	metricsListen := flagOr(proxyMetricsListen, cfg.Proxy.MetricsListen)
	partition := flagOr(proxyPartition, cfg.Proxy.Partition)
	if err := entity.ValidatePartition(partition); err != nil {
		return fmt.Errorf("partition %q: %w", partition, err)
	}

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithSession(logging.WithComponent(ctx, "proxy"), partition)
	log := logging.FromContext(ctx)

	if !proxyNoPrompt {
		a.Prompts.SetPrompter(prompt.NewTerminalPrompter(ctx))
	}

	if _, err := a.Sessions.Configure(ctx, partition); err != nil {
		return fmt.Errorf("configure session: %w", err)
	}

	a.Config.OnConfigChange(a.ApplyConfig)
	if err := a.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config changes will need a restart")
	}

	evs, unsubscribe := a.Events.Subscribe(events.DefaultBuffer)
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Lifetime.Run(gctx)
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev, ok := <-evs:
				if !ok {
					return nil
				}
				fmt.Fprintln(cmd.ErrOrStderr(), a.Theme.SecurityEvent(ev))
			}
		}
	})
	g.Go(func() error {
		return proxy.ListenAndServe(gctx, listen, proxy.NewServer(a.Engine, partition))
	})
	if metricsListen != "" {
		g.Go(func() error {
			return proxy.ListenAndServe(gctx, metricsListen, a.StatusHandler())
		})
	}

	log.Info().
		Str("listen", listen).
		Str("metrics", metricsListen).
		Bool("prompts", !proxyNoPrompt).
		Msg("proxy started")

	err := g.Wait()
	if n := a.Sessions.TeardownIncognito(a.Ctx()); n > 0 {
		log.Info().Int("sessions", n).Msg("incognito sessions discarded")
	}
	return err
}

func flagOr(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
