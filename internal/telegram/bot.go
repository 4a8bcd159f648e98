package telegram

import (
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Robert-K/telegram-group-counter/internal/config"
	"github.com/Robert-K/telegram-group-counter/internal/service"
	"github.com/Robert-K/telegram-group-counter/internal/storage"
)

type Bot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
	cfg     *config.Config

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
}

func NewBot() (*Bot, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	botAPI.Debug = cfg.Debug

	svc := service.New(storage.NewRegistry())
	handler := NewHandler(botAPI, svc)

	return &Bot{
		bot:     botAPI,
		handler: handler,
		cfg:     cfg,
		queues:  make(map[int64]chan tgbotapi.Update),
	}, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	updates := b.bot.GetUpdatesChan(u)

	log.Println("Bot started!")

	for update := range updates {
		chatID, ok := updateChatID(update)
		if !ok {
			continue
		}
		b.dispatch(chatID, update)
	}
}

// dispatch ставит событие в очередь его чата. У каждого чата своя
// горутина, так что события одного чата обрабатываются по порядку,
// а чаты не блокируют друг друга.
func (b *Bot) dispatch(chatID int64, update tgbotapi.Update) {
	b.mu.Lock()
	queue, ok := b.queues[chatID]
	if !ok {
		queue = make(chan tgbotapi.Update, 16)
		b.queues[chatID] = queue
		go b.worker(queue)
	}
	b.mu.Unlock()

	queue <- update
}

func (b *Bot) worker(queue chan tgbotapi.Update) {
	for update := range queue {
		b.route(update)
	}
}

func (b *Bot) route(update tgbotapi.Update) {
	if update.Message != nil && update.Message.IsCommand() {
		msg := update.Message
		switch msg.Command() {
		case "start":
			b.handler.HandleStart(msg)
		case "inc":
			b.handler.HandleIncDec(msg, true)
		case "dec":
			b.handler.HandleIncDec(msg, false)
		case "set":
			b.handler.HandleSet(msg)
		case "title":
			b.handler.HandleTitle(msg)
		}
	} else if update.CallbackQuery != nil {
		callback := update.CallbackQuery

		switch callback.Data {
		case callbackIncrement:
			b.handler.HandleTap(callback, 1.0)
		case callbackDecrement:
			b.handler.HandleTap(callback, -1.0)
		}
		// Answer callback query so the loading icon on the button disappears
		callbackResp := tgbotapi.NewCallback(callback.ID, "")
		b.bot.Request(callbackResp)
	}
}

func updateChatID(update tgbotapi.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID, true
	}
	return 0, false
}
