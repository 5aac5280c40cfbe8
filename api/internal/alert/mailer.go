package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

// Mailer шлёт письма через внешний email-сервис.
// Контракт сервиса: POST {to,subject,html} -> {success,error}.
type Mailer struct {
	ServiceURL string
	Client     *http.Client
}

func NewMailer(serviceURL string) *Mailer {
	return &Mailer{
		ServiceURL: strings.TrimSpace(serviceURL),
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type sendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Send возвращает успех доставки. Любой сбой уходит в лог и даёт false,
// ошибок наружу нет: алерт не имеет права уронить основной запрос.
func (m *Mailer) Send(ctx context.Context, recipient, subject, html string) bool {
	if m.ServiceURL == "" {
		log.Printf("alert: EMAIL_SERVICE_URL is not set, email skipped")
		return false
	}
	if strings.TrimSpace(recipient) == "" {
		log.Printf("alert: recipient is not set, email skipped")
		return false
	}

	body, _ := json.Marshal(sendRequest{To: recipient, Subject: subject, HTML: html})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.ServiceURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("alert: build request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client().Do(req)
	if err != nil {
		log.Printf("alert: email service: %v", err)
		return false
	}
	defer resp.Body.Close()

	// Статус сам по себе не важен, исход определяет поле success
	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("alert: email service: bad response (status %d): %v", resp.StatusCode, err)
		return false
	}
	if !out.Success {
		log.Printf("alert: email service error: %s", out.Error)
		return false
	}
	log.Printf("alert: email sent to %s", recipient)
	return true
}

func (m *Mailer) client() *http.Client {
	if m.Client != nil {
		return m.Client
	}
	return http.DefaultClient
}
