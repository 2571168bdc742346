// Package bot pushes admin notifications over Telegram: new orders and new
// access requests land in the admin chat. The notifier is optional; a nil
// *Notifier silently drops everything so call sites need no guards.
package bot

import (
	"fmt"
	"sync"
	"time"

	"menuboard/models"
	"menuboard/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("bot")

// dedupWindow suppresses repeat notifications for the same event, e.g. a
// double-submitted order form.
const dedupWindow = 30 * time.Second

type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64

	mu   sync.Mutex
	sent map[string]time.Time
	now  func() time.Time
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Notifier{
		api:    api,
		chatID: chatID,
		sent:   make(map[string]time.Time),
		now:    time.Now,
	}, nil
}

// OrderCreated announces a new pending order. business is whatever label
// the caller has at hand, usually the slug.
func (n *Notifier) OrderCreated(business string, o *models.Order) {
	if n == nil {
		return
	}
	n.send(fmt.Sprintf("order:%d", o.ID), fmt.Sprintf(
		"New order #%d for %s\nItems: %d\nTotal: %d cents\nCustomer: %s %s",
		o.ID, business, len(o.Items), o.TotalCents, o.CustomerName, o.CustomerPhone,
	))
}

// AccessRequested announces a new access request awaiting review.
func (n *Notifier) AccessRequested(r *services.AccessRequest) {
	if n == nil {
		return
	}
	n.send("access:"+r.ID, fmt.Sprintf(
		"New access request %s\nUser: %s\nName: %s\nNote: %s",
		r.ID, r.UserID, r.FullName, r.Note,
	))
}

func (n *Notifier) send(key, text string) {
	if !n.shouldSend(key) {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.Warningf("notify %s failed: %v", key, err)
	}
}

// shouldSend records the key and reports whether it was already sent within
// the de-dup window. Old keys are swept on the way through.
func (n *Notifier) shouldSend(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := n.now()
	for k, at := range n.sent {
		if now.Sub(at) > dedupWindow {
			delete(n.sent, k)
		}
	}
	if at, ok := n.sent[key]; ok && now.Sub(at) <= dedupWindow {
		return false
	}
	n.sent[key] = now
	return true
}
