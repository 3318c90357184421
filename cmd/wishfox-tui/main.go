package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/app"
	"wishfox-tui/internal/config"
	"wishfox-tui/internal/logging"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/session"
)

var (
	version = "0.1.0"
)

// Flags
var (
	flagConfig     string
	flagInitData   string
	flagStartParam string
	flagAPIBase    string
	flagThemeFile  string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wishfox-tui",
	Short: "Wishfox - wishlists with friends, in the terminal",
	Long: `Wishfox keeps your wishlist, your friends' activity and your
subscriptions in one terminal UI.

Examples:
  wishfox-tui                                  # Start with init data from config
  wishfox-tui --init-data "$TG_INIT_DATA"      # Use init data from Telegram
  wishfox-tui --start-param alice              # Open as if launched by alice's link
  wishfox-tui deeplink alice                   # Print alice's share link and QR`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runTUI(cfg)
	},
}

var deeplinkCmd = &cobra.Command{
	Use:   "deeplink <username>",
	Short: "Print the share link and QR code for a wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return printDeepLink(cmd.OutOrStdout(), botName(cfg, logging.Discard()), args[0])
	},
}

// printDeepLink печатает ссылку и QR под ней
func printDeepLink(w io.Writer, bot, username string) error {
	link := platform.BuildDeepLink(bot, username)
	if link == "" {
		return errors.New("bot name is unknown: set telegram.bot_name or telegram.bot_token")
	}
	if _, err := fmt.Fprintln(w, link); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, platform.RenderQR(link, nil))
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: $XDG_CONFIG_HOME/wishfox-tui/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagAPIBase, "api-base", "", "API base URL")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagInitData, "init-data", "", "Telegram init data string")
	rootCmd.Flags().StringVar(&flagStartParam, "start-param", "", "deep link start parameter")
	rootCmd.Flags().StringVar(&flagThemeFile, "theme-file", "", "theme params file, reloaded on change")

	rootCmd.AddCommand(deeplinkCmd)
}

// loadConfig читает конфиг и накладывает флаги
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagAPIBase != "" {
		cfg.API.BaseURL = flagAPIBase
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagInitData != "" {
		cfg.Telegram.InitData = flagInitData
	}
	if flagStartParam != "" {
		cfg.Telegram.StartParam = flagStartParam
	}
	if flagThemeFile != "" {
		cfg.Telegram.ThemeFile = flagThemeFile
	}
	return cfg, nil
}

// botName имя бота из конфига, иначе через getMe по токену
func botName(cfg *config.Config, logger logrus.FieldLogger) string {
	if cfg.Telegram.BotName != "" || cfg.Telegram.BotToken == "" {
		return cfg.Telegram.BotName
	}
	name, err := platform.ResolveBotName(cfg.Telegram.BotToken, "")
	if err != nil {
		logger.WithError(err).Warn("failed to resolve bot name")
		return ""
	}
	return name
}

// initData готовая init data или dev-подпись от имени dev_user
func initData(cfg *config.Config, logger logrus.FieldLogger) string {
	tg := cfg.Telegram
	if tg.InitData != "" {
		if tg.BotToken != "" {
			if err := platform.VerifyInitData(tg.InitData, tg.BotToken); err != nil {
				logger.WithError(err).Warn("init data signature does not match bot token")
			}
		}
		return tg.InitData
	}
	if tg.BotToken == "" || tg.DevUser.ID == 0 {
		return ""
	}
	raw, err := platform.SignInitData(tg.BotToken, tgbotapi.User{
		ID:           tg.DevUser.ID,
		FirstName:    tg.DevUser.FirstName,
		LastName:     tg.DevUser.LastName,
		UserName:     tg.DevUser.Username,
		LanguageCode: tg.LanguageCode,
	}, tg.StartParam, time.Now())
	if err != nil {
		logger.WithError(err).Warn("failed to sign dev init data")
		return ""
	}
	logger.WithField("user_id", tg.DevUser.ID).Info("using dev init data")
	return raw
}

// serveMetrics поднимает /metrics, если задан адрес
func serveMetrics(addr string, reg *prometheus.Registry, logger logrus.FieldLogger) func() {
	if addr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("metrics server stopped")
		}
	}()
	logger.WithField("addr", addr).Info("metrics listener started")
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func runTUI(cfg *config.Config) error {
	logger, logCloser, err := logging.New(cfg.Logging.Level, cfg.Logging.FilePath)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Создаем контекст с отменой для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	stopMetrics := serveMetrics(cfg.Metrics.Addr, reg, logger)
	defer stopMetrics()

	client := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.APITimeout()),
		api.WithLogger(logger),
		api.WithMetrics(api.NewMetrics(reg)),
	)

	opts := platform.Options{
		InitData:     initData(cfg, logger),
		StartParam:   cfg.Telegram.StartParam,
		BotName:      botName(cfg, logger),
		LanguageCode: cfg.Telegram.LanguageCode,
		Logger:       logger,
		Fallback:     io.Discard,
	}
	if cfg.Telegram.ThemeFile != "" {
		if tf, err := platform.LoadThemeFile(cfg.Telegram.ThemeFile); err != nil {
			logger.WithError(err).Warn("failed to load theme file")
		} else {
			opts.Scheme = tf.ColorScheme
			opts.Theme = tf.Params
		}
	}
	bridge := platform.NewBridge(opts)
	defer bridge.Close()

	sess := session.New(client, bridge, logger)
	defer sess.Close()

	application := app.New(app.Options{
		Config:  cfg,
		Session: sess,
		Bridge:  bridge,
		Logger:  logger,
	})
	defer application.Close()

	program := tea.NewProgram(
		application,
		tea.WithAltScreen(), // Используем альтернативный экран
		tea.WithContext(ctx),
	)

	// смена темы платформой приходит в программу как сообщение
	themeSub := bridge.OnEvent(platform.EventThemeChanged, func(ev platform.Event) {
		if palette, ok := ev.Data.(platform.Palette); ok {
			program.Send(app.ThemeChangedMsg{Palette: palette})
		}
	})
	defer bridge.OffEvent(themeSub)

	if cfg.Telegram.ThemeFile != "" {
		watcher, err := platform.WatchTheme(ctx, bridge, cfg.Telegram.ThemeFile, logger)
		if err != nil {
			logger.WithError(err).Warn("theme file is not watched")
		} else {
			defer watcher.Close()
		}
	}

	// Обрабатываем сигналы для graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
