// Package delivery wraps outbound Telegram calls with the two failure
// modes gameplay cares about: edits that change nothing and rate
// limits. Rate-limited calls are retried exactly once after the delay
// the API asks for.
package delivery

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-telegram/bot"

	"tg-hangman-bot/pkg/logger"
)

// Status is the outcome of a delivery attempt.
type Status string

const (
	StatusOk          Status = "ok"
	StatusUnchanged   Status = "unchanged"
	StatusRateLimited Status = "rate_limited"
)

// sleep is swapped out in tests.
var sleep = time.Sleep

// Send posts a new message.
func Send(ctx context.Context, b *bot.Bot, params *bot.SendMessageParams) (Status, int, error) {
	messageID := 0
	status, err := attempt(func() error {
		message, err := b.SendMessage(ctx, params)
		if err == nil && message != nil {
			messageID = message.ID
		}
		return err
	})
	return status, messageID, err
}

// Edit rewrites an existing message in place. Editing to identical
// content reports StatusUnchanged instead of an error.
func Edit(ctx context.Context, b *bot.Bot, params *bot.EditMessageTextParams) (Status, error) {
	status, err := attempt(func() error {
		_, err := b.EditMessageText(ctx, params)
		return err
	})
	return status, err
}

// Delete removes a batch of messages, ignoring the messages the API no
// longer knows about.
func Delete(ctx context.Context, b *bot.Bot, chatID int64, messageIDs []int) error {
	if len(messageIDs) == 0 {
		return nil
	}
	_, err := attempt(func() error {
		_, err := b.DeleteMessages(ctx, &bot.DeleteMessagesParams{
			ChatID:     chatID,
			MessageIDs: messageIDs,
		})
		return err
	})
	return err
}

// attempt runs the call, classifies its error, and retries once after
// the requested delay when rate limited. A second rate limit gives up.
func attempt(call func() error) (Status, error) {
	status, delay, err := classify(call())
	if status != StatusRateLimited {
		return status, err
	}

	logger.Debug("rate limited by telegram, retrying once", "delay", delay)
	sleep(delay)

	status, _, err = classify(call())
	if status == StatusRateLimited {
		return StatusRateLimited, err
	}
	return status, err
}

func classify(err error) (Status, time.Duration, error) {
	if err == nil {
		return StatusOk, 0, nil
	}
	if bot.IsTooManyRequestsError(err) {
		delay := time.Second
		var tooMany *bot.TooManyRequestsError
		if errors.As(err, &tooMany) && tooMany.RetryAfter > 0 {
			delay = time.Duration(tooMany.RetryAfter) * time.Second
		}
		return StatusRateLimited, delay, err
	}
	if strings.Contains(err.Error(), "message is not modified") {
		return StatusUnchanged, 0, nil
	}
	return StatusOk, 0, err
}
