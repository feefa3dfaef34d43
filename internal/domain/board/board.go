package board

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when a reply references a message id that was
// never issued.
var ErrNotFound = errors.New("message not found")

// AdminName is the fixed receiver for guest posts and the sender of every
// reply.
const AdminName = "Admin"

type Message struct {
	ID       int64     `json:"id"`
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Subject  string    `json:"subject"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}

// Board is an in-process append-only message log. Ids start at 1, grow
// monotonically and are never reused, even after a restart wipes the log.
// The board is intentionally volatile; nothing here touches the database.
type Board struct {
	mu       sync.Mutex
	messages []*Message
	nextID   int64
}

func NewBoard() *Board {
	return &Board{nextID: 1}
}

// Post appends a guest message addressed to the admin and returns it.
func (b *Board) Post(sender, subject, content string) *Message {
	return b.append(sender, AdminName, subject, content)
}

// Reply appends the admin's answer to the message with the given id. The
// reply goes back to the original sender with a derived subject.
func (b *Board) Reply(id int64, content string) (*Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var orig *Message
	for _, m := range b.messages {
		if m.ID == id {
			orig = m
			break
		}
	}
	if orig == nil {
		return nil, ErrNotFound
	}
	return b.appendLocked(AdminName, orig.Sender, "Reply to "+orig.Subject, content), nil
}

// MessagesFor returns the messages visible to the given identity, in post
// order. Guests see their own conversation; the admin sees the inbox;
// anonymous visitors see nothing.
func (b *Board) MessagesFor(id Identity) []*Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []*Message{}
	for _, m := range b.messages {
		switch id.Role {
		case RoleAdmin:
			if m.Receiver == AdminName {
				out = append(out, m)
			}
		case RoleGuest:
			if m.Sender == id.Name || m.Receiver == id.Name {
				out = append(out, m)
			}
		}
	}
	return out
}

func (b *Board) append(sender, receiver, subject, content string) *Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.appendLocked(sender, receiver, subject, content)
}

func (b *Board) appendLocked(sender, receiver, subject, content string) *Message {
	m := &Message{
		ID:       b.nextID,
		Sender:   sender,
		Receiver: receiver,
		Subject:  subject,
		Content:  content,
		SentAt:   time.Now().UTC(),
	}
	b.nextID++
	b.messages = append(b.messages, m)
	return m
}
