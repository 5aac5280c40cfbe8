package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/joho/godotenv"

	"vision-guard/api/internal/alert"
	"vision-guard/api/internal/config"
	"vision-guard/api/internal/detect"
	"vision-guard/api/internal/detect/gemini"
	"vision-guard/api/internal/handle"
	"vision-guard/api/internal/store"
)

func main() {
	// .env удобен локально; в проде переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process env")
	}

	cfg := config.Load()

	// Prefer platform PORT env var; fallback to cfg.Port; then to 8000
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	// --- Postgres (опционально: схема detection_events и ping в healthz) ---
	var db *sql.DB
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		// connection pool tune (нагрузка до ~20 rps)
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		events := store.NewEventRepo(db)
		if err := events.EnsureSchema(ctx); err != nil {
			log.Fatalf("store: ensure schema: %v", err)
		}
		cancel()
		log.Printf("db connected, detection_events ready")
	}

	// --- Движок и каналы алертов ---
	eng := gemini.New(cfg.GoogleAPIKey, cfg.GeminiModel)

	dispatcher := &alert.Dispatcher{
		Mailer:    alert.NewMailer(cfg.EmailServiceURL),
		Recipient: cfg.AlertEmail,
	}
	if cfg.TelegramBotToken != "" && cfg.AlertTelegramChatID != "" {
		chatID, err := strconv.ParseInt(strings.TrimSpace(cfg.AlertTelegramChatID), 10, 64)
		if err != nil {
			log.Fatalf("bad ALERT_TELEGRAM_CHAT_ID: %v", err)
		}
		bot, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramBotToken, tgbotapi.APIEndpoint,
			&http.Client{Timeout: 10 * time.Second})
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		bot.Debug = false
		dispatcher.Telegram = &alert.Telegram{Bot: bot, ChatID: chatID}
		log.Printf("telegram alert channel enabled (chat %d)", chatID)
	}

	analyzer := &detect.Analyzer{
		Backend:  eng,
		Notifier: dispatcher,
		Delivery: cfg.AlertDelivery,
	}
	h := handle.New(analyzer)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/analyze", handle.EnableCORS(h.Analyze))

	addr := ":" + cfg.Port
	log.Printf("vision-guard listening on %s (engine=%s, model=%s, alerts=%s)",
		addr, eng.Name(), eng.GetModel(), cfg.AlertDelivery)
	log.Fatal(http.ListenAndServe(addr, mux))
}
