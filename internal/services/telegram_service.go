package services

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramService — опциональный админ-канал уведомлений.
// При пустом токене сервис работает как no-op.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, adminChatID int64) *TelegramService {
	if botToken == "" || adminChatID == 0 {
		return &TelegramService{}
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg] bot init failed, notifications disabled: %v", err)
		return &TelegramService{}
	}
	return &TelegramService{bot: bot, chatID: adminChatID}
}

func (t *TelegramService) SendMessage(text string) error {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][send] failed chat_id=%d: %v", t.chatID, err)
		return err
	}
	return nil
}
