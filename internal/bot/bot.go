// bot содержит Telegram-транспорт: long-polling, маршрутизацию команд
// и раскладку апдейтов по per-user очередям.
//
// Принципы:
//   - Транспорт не содержит бизнес-правил: валидация ответов и порядок
//     стадий живут в service, здесь только маршрутизация и тексты ответов;
//   - Ошибки сервиса маппятся в ответы пользователю:
//     ErrInvalidAnswer    -> переспрос текущей стадии;
//     ErrNoActiveSession  -> статичная подсказка по командам;
//     ErrNotRegistered    -> приглашение пройти /register;
//     иные                -> единое сообщение об ошибке (повтор безопасен).
package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/avoronina/datingbot/internal/config"
	"github.com/avoronina/datingbot/internal/pkg/log"
	"github.com/avoronina/datingbot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot — Telegram-бот поверх контроллера регистрации.
type Bot struct {
	api      *tgbotapi.BotAPI
	svc      *service.Service
	cfg      *config.Config
	log      *slog.Logger
	dispatch *dispatcher
}

// New создаёт бота и авторизуется в Bot API.
func New(cfg *config.Config, svc *service.Service, lg *slog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	api.Debug = cfg.Telegram.Debug

	b := &Bot{
		api: api,
		svc: svc,
		cfg: cfg,
		log: lg,
	}
	b.dispatch = newDispatcher(b.handleUpdate)

	return b, nil
}

// Run запускает long-polling и блокируется до отмены контекста.
// Перед возвратом дожидается, пока per-user воркеры дообработают
// уже принятые апдейты.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.cfg.Telegram.PollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)
	b.log.Info("bot_started", "account", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.dispatch.Wait()
			b.log.Info("bot_stopped")

			return
		case update, ok := <-updates:
			if !ok {
				b.dispatch.Wait()

				return
			}

			msg := update.Message
			if msg == nil || msg.From == nil {
				continue
			}

			b.dispatch.Dispatch(msg.From.ID, update)
		}
	}
}

// handleUpdate обрабатывает один апдейт внутри per-user воркера.
func (b *Bot) handleUpdate(update tgbotapi.Update) {
	msg := update.Message

	lg := b.log.With("user_id", msg.From.ID, "chat_id", msg.Chat.ID)

	ctx := context.Background()
	if d := b.cfg.Timeouts.Service; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	ctx = log.Into(ctx, lg)

	reply := b.routeMessage(ctx, msg)
	if reply == "" {
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		lg.Error("send_failed", "err", err)
	}
}

// routeMessage выбирает обработчик и возвращает текст ответа.
// Неизвестные команды во время активной анкеты считаются невалидным
// ответом текущей стадии, а не сбросом диалога.
func (b *Bot) routeMessage(ctx context.Context, msg *tgbotapi.Message) string {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			incUpdateHandled("start")

			return b.handleStart(ctx, msg)
		case "register":
			incUpdateHandled("register")

			return b.handleRegister(ctx, msg)
		case "search":
			incUpdateHandled("search")

			return b.handleSearch(ctx, msg)
		}
	}

	incUpdateHandled("text")

	return b.handleText(ctx, msg)
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) string {
	if err := b.svc.Greet(ctx, msg.From.ID, msg.From.UserName); err != nil {
		incStorageFailure()

		return replyStorageFailure
	}

	return replyGreeting
}

func (b *Bot) handleRegister(ctx context.Context, msg *tgbotapi.Message) string {
	if err := b.svc.BeginRegistration(ctx, msg.From.ID, msg.From.UserName); err != nil {
		incStorageFailure()

		return replyStorageFailure
	}

	return replyPromptAge
}

func (b *Bot) handleSearch(ctx context.Context, msg *tgbotapi.Message) string {
	if _, err := b.svc.Search(ctx, msg.From.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotRegistered):
			return replyNeedRegister
		default:
			incStorageFailure()

			return replyStorageFailure
		}
	}

	return replySearchStub
}

func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) string {
	result, err := b.svc.Answer(ctx, msg.From.ID, msg.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSession):
			return replyFallback
		case errors.Is(err, service.ErrInvalidAnswer):
			return repromptFor(result.Stage)
		default:
			incStorageFailure()

			return replyStorageFailure
		}
	}

	if result.Completed {
		incRegistrationCompleted()

		return replyCompleted
	}

	return promptFor(result.Stage)
}
