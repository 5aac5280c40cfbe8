package alert

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"vision-guard/api/internal/detect"
)

// photoSender — минимальный срез tgbotapi.BotAPI, чтобы канал тестировался без сети.
type photoSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram — запасной канал алертов: снимок с подписью в настроенный чат.
// Как и письмо, работает по принципу best-effort, сбой только логируется.
type Telegram struct {
	Bot    photoSender
	ChatID int64
}

func (t *Telegram) Notify(ctx context.Context, res detect.DetectionResult, img detect.ImagePart) bool {
	if t == nil || t.Bot == nil || t.ChatID == 0 {
		return false
	}
	if err := ctx.Err(); err != nil {
		log.Printf("alert: telegram: %v", err)
		return false
	}

	caption := fmt.Sprintf("⚠️ Weapon detected\ngun=%v, knife=%v\n\n%s",
		res.GunDetected, res.KnifeDetected, res.ExtractedText)
	// лимит подписи Telegram — 1024 символа
	if len(caption) > 1000 {
		caption = caption[:1000] + "…"
	}

	photo := tgbotapi.NewPhoto(t.ChatID, tgbotapi.FileBytes{Name: "detection", Bytes: img.Data})
	photo.Caption = caption
	if _, err := t.Bot.Send(photo); err != nil {
		log.Printf("alert: telegram send: %v", err)
		return false
	}
	return true
}
