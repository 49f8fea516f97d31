package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/erasmus-survival/erasmusbot/internal/service"
)

// ---------------------------------------------------------------------------
// ExportHandler – /export
// ---------------------------------------------------------------------------

// ExportHandler sends a full JSON backup of all six collections as a
// document, with the date in the filename.
type ExportHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc *service.Service, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, logger: logger}
}

// Handle processes the /export command.
func (h *ExportHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	snapshot := h.svc.ExportSnapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	filename := fmt.Sprintf("erasmus-backup-%s.json", time.Now().Format("2006-01-02"))
	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	doc.Caption = "💾 Your Erasmus Survival backup. Keep it somewhere safe."

	if _, err := bot.Send(doc); err != nil {
		return fmt.Errorf("send backup document: %w", err)
	}

	h.logger.WithField("filename", filename).Info("Backup exported")
	return nil
}

// ---------------------------------------------------------------------------
// ResetHandler – /reset confirm
// ---------------------------------------------------------------------------

// ResetHandler wipes all data back to the seed defaults. It refuses to
// run without the literal "confirm" argument.
type ResetHandler struct {
	svc    *service.Service
	logger *logrus.Logger
}

// NewResetHandler creates a new ResetHandler.
func NewResetHandler(svc *service.Service, logger *logrus.Logger) *ResetHandler {
	return &ResetHandler{svc: svc, logger: logger}
}

// Handle processes the /reset command.
func (h *ResetHandler) Handle(bot *tgbotapi.BotAPI, message *tgbotapi.Message, args []string) error {
	if len(args) != 1 || args[0] != "confirm" {
		reply(bot, message,
			"⚠️ This wipes *everything* back to the defaults.\n"+
				"If you mean it, send `/reset confirm`.\n"+
				"Consider `/export` first.")
		return nil
	}

	if err := h.svc.ResetAll(context.Background()); err != nil {
		return fmt.Errorf("reset all data: %w", err)
	}

	reply(bot, message, "🧨 Everything reset to defaults. Fresh start!")
	return nil
}
