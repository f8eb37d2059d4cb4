// Package telegram serves readings to Telegram chats over long polling.
package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/arcanaland/eventtarot/internal/reading"
)

const (
	CommandStart   = "start"
	CommandReading = "rasclad"

	// CallbackNewReading is the data of the repeat button
	CallbackNewReading = "new_rasclad"

	// PhotoName is the file name attached to every card image
	PhotoName = "card.png"
)

// Sender is the part of tgbotapi.BotAPI the bot talks through
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Reader runs one reading and emits its units as they become ready
type Reader interface {
	Stream(ctx context.Context, emit func(reading.Unit)) *reading.Reading
}

// Bot represents the chat side of the service: it turns commands and button
// presses into readings and sends them back
type Bot struct {
	sender Sender
	reader Reader
	logger *zap.Logger
}

// Option configures a Bot
type Option func(*Bot)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bot) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a bot that replies through sender and draws readings from reader
func New(sender Sender, reader Reader, opts ...Option) *Bot {
	b := &Bot{
		sender: sender,
		reader: reader,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run handles updates until ctx is done or updates is closed. Every update
// gets its own goroutine so one slow reading never holds up other chats.
// Readings already started are not cancelled with ctx; Run returns once they
// have been sent.
func (b *Bot) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	defer wg.Wait()

	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.Handle(handlerCtx, update)
			}()
		}
	}
}

// Handle dispatches a single update. Unknown commands and callbacks are
// ignored.
func (b *Bot) Handle(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		chatID := update.Message.Chat.ID
		switch update.Message.Command() {
		case CommandStart:
			b.send(chatID, tgbotapi.NewMessage(chatID, reading.WelcomeText))
		case CommandReading:
			b.serveReading(ctx, chatID)
		}

	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		// the button stops spinning before the reading starts
		if _, err := b.sender.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
			b.logger.Warn("failed to answer callback", zap.String("callback", q.ID), zap.Error(err))
		}
		if q.Data != CallbackNewReading {
			return
		}
		chatID := q.From.ID
		if q.Message != nil {
			chatID = q.Message.Chat.ID
		}
		b.serveReading(ctx, chatID)
	}
}

// serveReading sends the shuffling notice, one message per position in
// order, then the repeat offer. A failed send is logged and the reading
// goes on.
func (b *Bot) serveReading(ctx context.Context, chatID int64) {
	logger := b.logger.With(zap.Int64("chat", chatID))

	b.send(chatID, tgbotapi.NewMessage(chatID, reading.ShufflingText))

	r := b.reader.Stream(ctx, func(u reading.Unit) {
		b.send(chatID, unitMessage(chatID, u))
	})

	if r.OfferRepeat {
		msg := tgbotapi.NewMessage(chatID, reading.RepeatText)
		msg.ReplyMarkup = RepeatKeyboard()
		b.send(chatID, msg)
	}

	logger.Info("reading served", zap.String("reading", r.ID), zap.Int("failures", r.Failures()))
}

func (b *Bot) send(chatID int64, c tgbotapi.Chattable) {
	if _, err := b.sender.Send(c); err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// unitMessage is a photo with its caption for a delivered unit and a text
// message for a failed one
func unitMessage(chatID int64, u reading.Unit) tgbotapi.Chattable {
	if u.Failed() {
		return tgbotapi.NewMessage(chatID, u.ErrorText())
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: PhotoName, Bytes: u.Image})
	photo.Caption = u.Caption()
	return photo
}

// RepeatKeyboard is the single button offering a new reading
func RepeatKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(reading.RepeatButtonText, CallbackNewReading),
		),
	)
}
