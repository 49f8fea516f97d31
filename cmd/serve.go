package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/erasmus-survival/erasmusbot/internal/api"
	"github.com/erasmus-survival/erasmusbot/internal/handlers"
	"github.com/erasmus-survival/erasmusbot/internal/metrics"
	"github.com/erasmus-survival/erasmusbot/internal/service"
	"github.com/erasmus-survival/erasmusbot/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot, HTTP API and background schedulers",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	svc, db, cfg, l, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	l.Info("Starting Erasmus Survival...")

	// Telegram bot
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.ChatID, l)
	if err != nil {
		return err
	}

	bot.RegisterCommand("start", handlers.NewStartHandler(l))
	bot.RegisterCommand("help", handlers.NewHelpHandler(l))

	// Expense handlers
	bot.RegisterCommand("spent", handlers.NewSpentHandler(svc, l))
	bot.RegisterCommand("expenses", handlers.NewExpensesHandler(svc, l))
	bot.RegisterCommand("delexpense", handlers.NewExpenseDeleteHandler(svc, l))

	// Pantry handlers
	bot.RegisterCommand("pantry", handlers.NewPantryHandler(svc, l))
	bot.RegisterCommand("use", handlers.NewPantryUseHandler(svc, l))
	bot.RegisterCommand("refill", handlers.NewPantryRefillHandler(svc, l))
	bot.RegisterCommand("addpantry", handlers.NewPantryAddHandler(svc, l))

	// Shopping list handlers
	bot.RegisterCommand("lists", handlers.NewListsHandler(svc, l))
	bot.RegisterCommand("buy", handlers.NewBuyHandler(svc, l))
	bot.RegisterCommand("check", handlers.NewCheckHandler(svc, l))
	bot.RegisterCommand("clearbought", handlers.NewClearBoughtHandler(svc, l))

	// Schedule handlers
	bot.RegisterCommand("class", handlers.NewClassAddHandler(svc, l))
	bot.RegisterCommand("schedule", handlers.NewScheduleHandler(svc, l))
	bot.RegisterCommand("delclass", handlers.NewClassDeleteHandler(svc, l))

	// Reminder handlers
	bot.RegisterCommand("remind", handlers.NewRemindHandler(svc, l))
	bot.RegisterCommand("reminders", handlers.NewRemindersHandler(svc, l))
	bot.RegisterCommand("done", handlers.NewReminderDoneHandler(svc, l))
	bot.RegisterCommand("delremind", handlers.NewReminderDeleteHandler(svc, l))

	// Data portability handlers
	bot.RegisterCommand("export", handlers.NewExportHandler(svc, l))
	bot.RegisterCommand("reset", handlers.NewResetHandler(svc, l))

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	notify := func(text string) {
		if err := bot.SendMessage(cfg.ChatID, text); err != nil {
			l.Errorf("Failed to deliver notification: %v", err)
		}
	}

	// Due-reminder notifications
	go svc.StartReminderNotifier(ctx, time.Minute, notify)

	// Morning digest
	digest := service.NewDigest(svc, notify, l)
	if err := digest.Start(cfg.DigestCron); err != nil {
		return err
	}
	defer digest.Stop()

	// HTTP API
	apiServer := api.NewServer(svc, l)
	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: apiServer.Handler(),
	}

	go func() {
		l.Infof("HTTP API listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
		}
	}()

	// Prometheus metrics
	metricsServer := &http.Server{
		Addr:    ":" + cfg.PrometheusPort,
		Handler: metrics.Handler(),
	}

	go func() {
		l.Infof("Metrics listening on :%s", cfg.PrometheusPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("Metrics server error: %v", err)
		}
	}()

	// Telegram long polling
	go func() {
		if err := bot.Start(ctx); err != nil {
			l.Errorf("Bot error: %v", err)
		}
	}()

	l.Info("Erasmus Survival started successfully")

	<-ctx.Done()

	l.Info("Shutting down...")
	httpServer.Close()
	metricsServer.Close()

	l.Info("Erasmus Survival stopped")
	return nil
}
