package services

import (
	"fmt"
	"log"
)

// AdminNotifier — служебные уведомления администратору (email + telegram).
// Всегда best-effort: сбой доставки логируется и не ломает основной запрос.
// Исключение — OTP при регистрации, он идёт напрямую через EmailService
// и обязан доставиться (fail-closed).
type AdminNotifier struct {
	Email      EmailService
	Telegram   *TelegramService
	AdminEmail string
}

func NewAdminNotifier(email EmailService, telegram *TelegramService, adminEmail string) *AdminNotifier {
	return &AdminNotifier{Email: email, Telegram: telegram, AdminEmail: adminEmail}
}

func (n *AdminNotifier) NotifyRegistration(userName, userEmail string) {
	if n == nil {
		return
	}
	text := fmt.Sprintf("Новая регистрация: <b>%s</b> (%s)", userName, userEmail)
	if err := n.Telegram.SendMessage(text); err != nil {
		log.Printf("[notify][register] telegram failed: %v", err)
	}
}

func (n *AdminNotifier) NotifyLogin(userName, role string) {
	if n == nil || n.AdminEmail == "" {
		return
	}
	if err := n.Email.SendLoginNotification(n.AdminEmail, userName, role); err != nil {
		log.Printf("[notify][login] email failed: %v", err)
	}
}

func (n *AdminNotifier) NotifyComment(userName string, blogID int, content string) {
	if n == nil {
		return
	}
	if n.AdminEmail != "" {
		if err := n.Email.SendCommentNotification(n.AdminEmail, userName, blogID, content); err != nil {
			log.Printf("[notify][comment] email failed: %v", err)
		}
	}
	text := fmt.Sprintf("Комментарий от <b>%s</b> к посту #%d", userName, blogID)
	if err := n.Telegram.SendMessage(text); err != nil {
		log.Printf("[notify][comment] telegram failed: %v", err)
	}
}
