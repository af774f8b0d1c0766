package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sena-h/group-companion/internal/logger"
)

const (
	lineReplyEndpoint = "https://api.line.me/v2/bot/message/reply"
	liffBaseURL       = "https://liff.line.me/"

	// triggerPhrase is the bot command that answers with the LIFF deep link.
	triggerPhrase = "LIFF起動"
)

// WebhookEvent is the subset of a LINE webhook event this service reads.
type WebhookEvent struct {
	Type       string `json:"type"`
	ReplyToken string `json:"replyToken"`
	Source     struct {
		GroupID string `json:"groupId"`
		RoomID  string `json:"roomId"`
	} `json:"source"`
	Message struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
}

type replyMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type replyRequest struct {
	ReplyToken string         `json:"replyToken"`
	Messages   []replyMessage `json:"messages"`
}

// LineService answers webhook events with a deep link into the tool.
type LineService struct {
	channels   *ChannelService
	endpoint   string
	httpClient *http.Client
}

// NewLineService creates a new LineService.
func NewLineService(channels *ChannelService) *LineService {
	return &LineService{
		channels: channels,
		endpoint: lineReplyEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// HandleEvents processes a webhook batch. Reply failures are logged, never
// surfaced: the webhook response is 200 regardless.
func (s *LineService) HandleEvents(ctx context.Context, events []WebhookEvent) {
	for _, event := range events {
		if event.Type != "message" || event.Message.Type != "text" {
			continue
		}
		if event.Message.Text != triggerPhrase {
			continue
		}

		lineGroupID := event.Source.GroupID
		if lineGroupID == "" {
			lineGroupID = event.Source.RoomID
		}

		channel, err := s.channels.Resolve(lineGroupID)
		if err != nil {
			// Without an active channel there are no credentials to reply
			// with; skip the event instead of sending a blank-token request.
			if errors.Is(err, ErrNoActiveChannel) {
				logger.Warn("webhook event skipped: no active channel", "line_group_id", lineGroupID)
			} else {
				logger.Error("tenant resolution failed", "line_group_id", lineGroupID, "error", err)
			}
			continue
		}

		text := "グループツールを開く: " + liffBaseURL + channel.LiffID
		if err := s.reply(ctx, channel.LineChannelAccessToken, event.ReplyToken, text); err != nil {
			logger.Error("failed to send reply", "channel_id", channel.ID, "error", err)
		}
	}
}

func (s *LineService) reply(ctx context.Context, accessToken, replyToken, text string) error {
	body, err := json.Marshal(replyRequest{
		ReplyToken: replyToken,
		Messages:   []replyMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode reply: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reply request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("reply request returned status %d", resp.StatusCode)
	}
	return nil
}
