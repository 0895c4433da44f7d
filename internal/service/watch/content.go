package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/fortune-watch/internal/domain"
)

// Message lengths in characters requested from the generator.
const (
	greetingMaxLen = 50
	eventMaxLen    = 100
)

var errContentRejected = errors.New("generated content rejected")

var weekdayNames = [...]string{
	time.Sunday:    "日曜日",
	time.Monday:    "月曜日",
	time.Tuesday:   "火曜日",
	time.Wednesday: "水曜日",
	time.Thursday:  "木曜日",
	time.Friday:    "金曜日",
	time.Saturday:  "土曜日",
}

// Message is the text of one proactive delivery.
type Message struct {
	Title   string
	Content string
	// Generated is false when the fallback template was used.
	Generated bool
}

// Composer builds persona-styled messages through the generator and falls
// back to deterministic templates when generation fails.
type Composer struct {
	gen     generator
	timeout time.Duration
	log     *slog.Logger
}

// NewComposer creates a new Composer. A non-positive timeout leaves the
// generator bounded only by the caller's context.
func NewComposer(log *slog.Logger, gen generator, timeout time.Duration) *Composer {
	return &Composer{gen: gen, timeout: timeout, log: log}
}

// Compose returns the message for the trigger. Content is never empty.
func (c *Composer) Compose(ctx context.Context, tr domain.Trigger, p domain.Persona) Message {
	title := Title(tr)
	limit := MaxLength(tr.Type)

	text, err := c.generate(ctx, BuildPrompt(tr, p, limit), limit)
	if err == nil {
		return Message{Title: title, Content: text, Generated: true}
	}

	c.log.WarnContext(ctx, "generation failed, using template",
		slog.String("user_id", tr.UserID.String()),
		slog.String("trigger", string(tr.Type)),
		slog.String("persona", p.ID),
		slog.String("error", err.Error()),
	)
	return Message{Title: title, Content: Fallback(tr)}
}

func (c *Composer) generate(ctx context.Context, prompt string, limit int) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	text := normalize(raw)
	switch n := utf8.RuneCountInString(text); {
	case n == 0:
		return "", fmt.Errorf("%w: empty", errContentRejected)
	case n > 2*limit:
		return "", fmt.Errorf("%w: %d characters, limit %d", errContentRejected, n, limit)
	}
	return text, nil
}

// normalize trims whitespace and one pair of wrapping quotes.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	for _, q := range [][2]string{{`"`, `"`}, {"「", "」"}, {"『", "』"}, {"“", "”"}} {
		if strings.HasPrefix(s, q[0]) && strings.HasSuffix(s, q[1]) && len(s) >= len(q[0])+len(q[1]) {
			s = strings.TrimSpace(s[len(q[0]) : len(s)-len(q[1])])
			break
		}
	}
	return s
}

// MaxLength returns the requested maximum message length for a trigger type.
func MaxLength(t domain.TriggerType) int {
	if t == domain.TriggerDailyGreeting {
		return greetingMaxLen
	}
	return eventMaxLen
}

// WeekdayName returns the Japanese name of the weekday.
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayNames[d]
}

// Title returns the delivery title for a trigger.
func Title(tr domain.Trigger) string {
	switch tr.Type {
	case domain.TriggerCalendarEvent:
		if tr.Event != nil {
			return tr.Event.Name
		}
	case domain.TriggerAnniversaryToday:
		if tr.Anniversary != nil {
			return tr.Anniversary.Name
		}
	case domain.TriggerAnniversaryReminder:
		if tr.Anniversary != nil {
			return fmt.Sprintf("%sまであと%d日", tr.Anniversary.Name, tr.DaysUntil)
		}
	case domain.TriggerDailyGreeting:
		return WeekdayName(tr.Weekday) + "のごあいさつ"
	}
	return "お知らせ"
}

// BuildPrompt returns the generation instruction for a trigger spoken by
// persona p, capped at limit characters.
func BuildPrompt(tr domain.Trigger, p domain.Persona, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "あなたは占い師「%s」です。\n", p.DisplayName)
	if p.Tone != "" {
		fmt.Fprintf(&b, "口調: %s\n", p.Tone)
	}
	if p.Focus != "" {
		fmt.Fprintf(&b, "得意分野: %s\n", p.Focus)
	}
	b.WriteString("\n")

	switch tr.Type {
	case domain.TriggerCalendarEvent:
		if ev := tr.Event; ev != nil {
			fmt.Fprintf(&b, "今日は「%s」です。", ev.Name)
			if ev.Description != "" {
				fmt.Fprintf(&b, "(%s)", ev.Description)
			}
			b.WriteString("\nこの行事にちなんで、ユーザーに寄り添う短いメッセージを書いてください。\n")
		}
	case domain.TriggerAnniversaryToday:
		if a := tr.Anniversary; a != nil {
			fmt.Fprintf(&b, "今日はユーザーの大切な記念日「%s」です。", a.Name)
			if a.Category != "" {
				fmt.Fprintf(&b, "(種類: %s)", a.Category)
			}
			b.WriteString("\n記念日を祝う短いメッセージを書いてください。\n")
		}
	case domain.TriggerAnniversaryReminder:
		if a := tr.Anniversary; a != nil {
			fmt.Fprintf(&b, "ユーザーの記念日「%s」まであと%d日です。", a.Name, tr.DaysUntil)
			if a.Category != "" {
				fmt.Fprintf(&b, "(種類: %s)", a.Category)
			}
			b.WriteString("\n記念日が近いことをやさしく知らせる短いメッセージを書いてください。\n")
		}
	case domain.TriggerDailyGreeting:
		fmt.Fprintf(&b, "今日は%sです。\n一日の始まりにふさわしい短いあいさつを書いてください。\n", WeekdayName(tr.Weekday))
	}

	fmt.Fprintf(&b, "\n条件:\n- %d文字以内\n- メッセージ本文のみを出力し、前置きや引用符は付けない\n", limit)
	return b.String()
}

// Fallback returns the deterministic template for a trigger. It never
// returns an empty string.
func Fallback(tr domain.Trigger) string {
	switch tr.Type {
	case domain.TriggerCalendarEvent:
		if ev := tr.Event; ev != nil {
			if desc := strings.TrimRight(strings.TrimSpace(ev.Description), "。"); desc != "" {
				return fmt.Sprintf("今日は%s。%s。素敵な一日になりますように。", ev.Name, desc)
			}
			return fmt.Sprintf("今日は%s。素敵な一日になりますように。", ev.Name)
		}
	case domain.TriggerAnniversaryToday:
		if a := tr.Anniversary; a != nil {
			return fmt.Sprintf("今日は「%s」の日ですね。心に残る一日になりますように。", a.Name)
		}
	case domain.TriggerAnniversaryReminder:
		if a := tr.Anniversary; a != nil {
			return fmt.Sprintf("「%s」まであと%d日です。楽しみな日に向けて、少しずつ準備していきましょう。", a.Name, tr.DaysUntil)
		}
	case domain.TriggerDailyGreeting:
		if name := WeekdayName(tr.Weekday); name != "" {
			return fmt.Sprintf("%sの朝ですね。今日もあなたらしく過ごせますように。", name)
		}
	}
	return "今日も素敵な一日になりますように。"
}
