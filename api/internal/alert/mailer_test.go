package alert

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerSendSuccess(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	m := NewMailer(srv.URL)
	ok := m.Send(context.Background(), "sec@corp.io", "Weapon detected", "<h3>Alert</h3>")

	assert.True(t, ok)
	assert.Equal(t, sendRequest{To: "sec@corp.io", Subject: "Weapon detected", HTML: "<h3>Alert</h3>"}, got)
}

func TestMailerServiceReportsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "smtp down"})
	}))
	defer srv.Close()

	ok := NewMailer(srv.URL).Send(context.Background(), "sec@corp.io", "s", "b")
	assert.False(t, ok)
}

func TestMailerUndecodableResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	ok := NewMailer(srv.URL).Send(context.Background(), "sec@corp.io", "s", "b")
	assert.False(t, ok)
}

func TestMailerServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение будет отвергнуто

	ok := NewMailer(srv.URL).Send(context.Background(), "sec@corp.io", "s", "b")
	assert.False(t, ok)
}

func TestMailerTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	m := NewMailer(srv.URL)
	m.Client = &http.Client{Timeout: 50 * time.Millisecond}

	start := time.Now()
	ok := m.Send(context.Background(), "sec@corp.io", "s", "b")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestMailerMissingConfig(t *testing.T) {
	t.Run("no service url", func(t *testing.T) {
		assert.False(t, NewMailer("").Send(context.Background(), "sec@corp.io", "s", "b"))
	})
	t.Run("no recipient", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		ok := NewMailer(srv.URL).Send(context.Background(), "", "s", "b")
		assert.False(t, ok)
		assert.False(t, called, "no recipient means no HTTP call")
	})
}

func TestMailerDefaultTimeout(t *testing.T) {
	m := NewMailer("http://mail.internal/send")
	require.NotNil(t, m.Client)
	assert.Equal(t, 10*time.Second, m.Client.Timeout)
}
