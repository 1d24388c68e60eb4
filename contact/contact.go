package contact

import (
	"time"

	"github.com/collabverse/site/db"
)

// Message is one contact form submission.
type Message struct {
	ID        int
	Name      string
	Email     string
	Subject   string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// IsRead reports whether an admin has marked the message read.
func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// Add inserts a new message and returns its ID.
func Add(name, email, subject, body string) (int, error) {
	res, err := db.Exec(`INSERT INTO ContactMessage (name, email, subject, body)
		VALUES (?, ?, ?, ?)`, name, email, subject, body)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// All returns every message, newest first.
func All() ([]Message, error) {
	rows, err := db.Query(`SELECT id, name, email, subject, body, read_at, created_at
		FROM ContactMessage ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.ReadAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkRead stamps a message as read. Marking an already-read message again is
// a no-op.
func MarkRead(id int) error {
	_, err := db.Exec(`UPDATE ContactMessage SET read_at = CURRENT_TIMESTAMP
		WHERE id = ? AND read_at IS NULL`, id)
	return err
}

// UnreadCount returns the number of unread messages for the admin badge.
func UnreadCount() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM ContactMessage WHERE read_at IS NULL`).Scan(&count)
	return count, err
}
