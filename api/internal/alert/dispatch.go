package alert

import (
	"context"

	"vision-guard/api/internal/detect"
)

// Dispatcher реализует detect.Notifier: письмо — основной канал,
// telegram (если настроен) — запасной, на итог доставки он не влияет.
type Dispatcher struct {
	Mailer    *Mailer
	Recipient string
	Telegram  *Telegram
}

func (d *Dispatcher) Notify(ctx context.Context, res detect.DetectionResult, img detect.ImagePart) bool {
	subject, body := ComposeWeaponAlert(res, img)
	ok := d.Mailer.Send(ctx, d.Recipient, subject, body)
	if d.Telegram != nil {
		d.Telegram.Notify(ctx, res, img)
	}
	return ok
}
