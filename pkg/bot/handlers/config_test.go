package handlers

import (
	"context"
	"strings"
	"testing"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/internal/testutil"
)

func TestHandleConfigSendsMenu(t *testing.T) {
	testutil.SetupTestDB(t)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleConfig(context.Background(), b, newTestUpdate("/config", 10))

	text := client.messageTextFor(t, "sendMessage")
	if !strings.Contains(text, "Configuration") {
		t.Fatalf("expected the configuration menu, got %q", text)
	}
}

func TestConfigCallbackOwnerGuard(t *testing.T) {
	testutil.SetupTestDB(t)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleConfigCallback(context.Background(), b, newTestCallbackUpdate("c:emoji:10", 11, 100, 5))

	body := client.lastRequestBody(t)
	if !strings.Contains(body, "not your configuration") {
		t.Fatalf("expected the config owner guard alert, got %q", body)
	}
}

func TestConfigSetPersistsEmoji(t *testing.T) {
	testutil.SetupTestDB(t)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleConfigCallback(context.Background(), b, newTestCallbackUpdate("c:set:lives:2:⚰️:10", 10, 100, 5))

	var settings db.EmojiSettings
	if err := db.DB.Where("user_id = ?", 10).First(&settings).Error; err != nil {
		t.Fatalf("expected a persisted settings row: %v", err)
	}
	if settings.LivesLast != "⚰️" {
		t.Fatalf("expected the last-life emoji stored, got %q", settings.LivesLast)
	}
	if settings.LivesHealthy != "" {
		t.Fatalf("other fields must stay unset, got %q", settings.LivesHealthy)
	}
}

func TestConfigResetDeletesSettings(t *testing.T) {
	testutil.SetupTestDB(t)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	if err := db.DB.Create(&db.EmojiSettings{UserID: 10, LivesHealthy: "🌱"}).Error; err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}

	HandleConfigCallback(context.Background(), b, newTestCallbackUpdate("c:confirm:10", 10, 100, 5))

	var count int64
	if err := db.DB.Model(&db.EmojiSettings{}).Where("user_id = ?", 10).Count(&count).Error; err != nil {
		t.Fatalf("failed to count settings rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected the settings row removed, found %d", count)
	}
}
