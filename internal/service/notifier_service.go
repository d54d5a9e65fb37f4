package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/Rakifeller/idea-approval/configs"
	"github.com/Rakifeller/idea-approval/internal/transfer"
)

// Notifier posts JSON payloads to the configured workflow-engine webhooks.
// No response body is consumed; a non-2xx status is an error for the caller
// to log and drop.
type Notifier interface {
	NotifyPoster(ctx context.Context, n transfer.PosterNotification) error
	NotifyGeneration(ctx context.Context, ideaID string) error
	TriggerTrendScan(ctx context.Context, niche, country string) error
}

type webhookNotifier struct {
	cfg    config.Config
	client *http.Client
}

func NewWebhookNotifier(cfg config.Config) Notifier {
	return &webhookNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (w *webhookNotifier) NotifyPoster(ctx context.Context, n transfer.PosterNotification) error {
	return w.post(ctx, w.cfg.PosterWebhookURL, n)
}

func (w *webhookNotifier) NotifyGeneration(ctx context.Context, ideaID string) error {
	return w.post(ctx, w.cfg.GenerationWebhookURL, transfer.GenerationTrigger{
		Trigger:   transfer.TriggerIdeaApproved,
		IdeaID:    ideaID,
		Timestamp: time.Now().UTC(),
	})
}

// industryIDs maps a character niche onto the trend engine's industry codes.
var industryIDs = map[string]string{
	"fashion":   "1501",
	"beauty":    "1501",
	"lifestyle": "1501",
	"travel":    "1502",
	"fitness":   "1503",
	"food":      "1504",
	"tech":      "1505",
}

func (w *webhookNotifier) TriggerTrendScan(ctx context.Context, niche, country string) error {
	industryID, ok := industryIDs[niche]
	if !ok {
		industryID = "1501"
	}

	return w.post(ctx, w.cfg.TrendWebhookURL, transfer.TrendScanRequest{
		Niche:      niche,
		Country:    country,
		IndustryID: industryID,
	})
}

func (w *webhookNotifier) post(ctx context.Context, url string, payload any) error {
	if url == "" {
		return fmt.Errorf("webhook url is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook %s returned status %d", url, resp.StatusCode)
	}
	return nil
}
