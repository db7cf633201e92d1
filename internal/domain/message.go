package domain

import "fmt"

// Message - запись игрового лога. Count > 1, если подряд пришел тот же текст.
type Message struct {
	Text  string `json:"text"`
	Fg    string `json:"fg"`
	Count int    `json:"count"`
}

func (m Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// MessageLog - лента сообщений для рендера.
type MessageLog struct {
	Messages []Message `json:"messages"`
}

func NewMessageLog() *MessageLog {
	return &MessageLog{Messages: []Message{}}
}

// Add склеивает одинаковые соседние сообщения в одно со счетчиком.
func (l *MessageLog) Add(text, fg string) {
	if n := len(l.Messages); n > 0 && l.Messages[n-1].Text == text {
		l.Messages[n-1].Count++
		return
	}
	l.Messages = append(l.Messages, Message{Text: text, Fg: fg, Count: 1})
}

// Tail возвращает последние n сообщений (копию)
func (l *MessageLog) Tail(n int) []Message {
	start := max(0, len(l.Messages)-n)
	out := make([]Message, len(l.Messages)-start)
	copy(out, l.Messages[start:])
	return out
}
