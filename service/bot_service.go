package service

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sudharsan-ak/job-autopilot/config"
)

// BotService pushes run summaries to Telegram when bot.is_send is on.
// Every method is a no-op on a nil receiver so callers never gate on it.
type BotService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewBotService returns nil when sending is disabled.
func NewBotService(cfg config.BotConfig) (*BotService, error) {
	if !cfg.IsSend {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &BotService{bot: bot, chatID: cfg.ChatID}, nil
}

func (s *BotService) SendMessage(text string) error {
	if s == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(s.chatID, text)
	_, err := s.bot.Send(msg)
	return err
}

// SendRunSummary reports one page's outcome tallies.
func (s *BotService) SendRunSummary(pageURL, summary string) error {
	if s == nil {
		return nil
	}
	return s.SendMessage(fmt.Sprintf("Autofill pass finished\n%s\n%s", pageURL, summary))
}
