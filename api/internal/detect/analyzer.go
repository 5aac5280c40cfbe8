package detect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backend — мультимодальный движок: промпт плюс картинка, на выходе сырой текст.
type Backend interface {
	Infer(ctx context.Context, prompt string, img ImagePart) (string, error)
}

// Notifier доставляет алерт по факту срабатывания. Возвращает успех доставки,
// ошибок наружу не бывает: сбой канала не должен ломать анализ.
type Notifier interface {
	Notify(ctx context.Context, res DetectionResult, img ImagePart) bool
}

// Режим доставки алерта относительно ответа клиенту.
const (
	DeliverySync     = "sync"
	DeliveryDeferred = "deferred"
)

const defaultNotifyTimeout = 30 * time.Second

// Analyzer — единственная точка входа пайплайна:
// декодирование -> инференс -> валидация -> (по условию) алерт.
type Analyzer struct {
	Backend  Backend
	Notifier Notifier

	// Delivery: sync блокирует ответ до исхода доставки,
	// deferred (дефолт) отправляет после, на фоне.
	Delivery string

	// NotifyTimeout ограничивает фоновую доставку; 0 = defaultNotifyTimeout.
	NotifyTimeout time.Duration
}

func (a *Analyzer) Analyze(ctx context.Context, imageB64 string) (DetectionResult, error) {
	img, err := DecodeImage(imageB64)
	if err != nil {
		return DetectionResult{}, err
	}

	raw, err := a.Backend.Infer(ctx, BuildPrompt(), img)
	if err != nil {
		if errors.Is(err, ErrEmptyResult) {
			return DetectionResult{}, err
		}
		return DetectionResult{}, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if strings.TrimSpace(raw) == "" {
		return DetectionResult{}, ErrEmptyResult
	}

	res, err := ParseModelOutput(raw)
	if err != nil {
		return DetectionResult{}, err
	}

	if res.WeaponDetected && a.Notifier != nil {
		a.dispatch(ctx, res, img)
	}
	return res, nil
}

// dispatch запускает доставку алерта. В deferred-режиме контекст запроса
// не используется: его отменят при отправке ответа, а доставка живёт дольше.
func (a *Analyzer) dispatch(ctx context.Context, res DetectionResult, img ImagePart) {
	if a.Delivery == DeliverySync {
		a.Notifier.Notify(ctx, res, img)
		return
	}

	timeout := a.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	nctx, cancel := context.WithTimeout(context.Background(), timeout)
	go func() {
		defer cancel()
		a.Notifier.Notify(nctx, res, img)
	}()
}
