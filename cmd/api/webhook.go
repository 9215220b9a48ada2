package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bnapp/pkg/log"
)

const webhookPath = "/webhook/telegram"

// A webhook_url of the form "ngrok:<api base>" asks the local ngrok agent for
// its public tunnel, which is how the bot is exposed during development.
const ngrokPrefix = "ngrok:"

// webhookRegistrar is the part of the Telegram bot that manages the webhook.
type webhookRegistrar interface {
	SetWebhook(ctx context.Context, webhookURL, secret string) error
	DeleteWebhook(ctx context.Context) error
}

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// registerWebhook points Telegram at this server. The returned func undoes the
// registration on shutdown when the URL belongs to an ngrok tunnel, which dies
// with the process. Stable URLs stay registered so Telegram queues updates.
func registerWebhook(ctx context.Context, l log.Logger, bot webhookRegistrar, configured, secret string) func(context.Context) {
	noop := func(context.Context) {}

	webhookURL := resolveWebhookURL(ctx, l, configured)
	if webhookURL == "" {
		return noop
	}
	if err := bot.SetWebhook(ctx, webhookURL, secret); err != nil {
		l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return noop
	}
	l.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)

	if !strings.HasPrefix(configured, ngrokPrefix) {
		return noop
	}
	return func(ctx context.Context) {
		if err := bot.DeleteWebhook(ctx); err != nil {
			l.Warnf(ctx, "Failed to delete Telegram webhook: %v", err)
			return
		}
		l.Info(ctx, "Telegram webhook removed")
	}
}

// resolveWebhookURL returns the URL to register with Telegram, or "" when none can be found.
func resolveWebhookURL(ctx context.Context, l log.Logger, configured string) string {
	if !strings.HasPrefix(configured, ngrokPrefix) {
		return configured
	}

	base, err := detectTunnel(ctx, strings.TrimPrefix(configured, ngrokPrefix), 10, 3*time.Second)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		return ""
	}
	l.Infof(ctx, "Auto-detected ngrok URL: %s", base)
	return strings.TrimRight(base, "/") + webhookPath
}

// detectTunnel polls the ngrok agent API until it reports a tunnel, preferring https.
func detectTunnel(ctx context.Context, apiBase string, attempts int, wait time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	endpoint := strings.TrimRight(apiBase, "/") + "/api/tunnels"

	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(wait):
			}
		}

		url, err := fetchTunnel(ctx, client, endpoint)
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no active tunnels")
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", attempts, lastErr)
}

func fetchTunnel(ctx context.Context, client *http.Client, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var t ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return "", fmt.Errorf("failed to decode ngrok response: %w", err)
	}

	first := ""
	for _, tn := range t.Tunnels {
		if tn.Proto == "https" {
			return tn.PublicURL, nil
		}
		if first == "" {
			first = tn.PublicURL
		}
	}
	return first, nil
}
