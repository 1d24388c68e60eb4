package waitlist

import (
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/collabverse/site/db"
)

// ErrDuplicate is returned when an email address is already on the waitlist.
var ErrDuplicate = errors.New("email is already on the waitlist")

// Signup is one waitlist entry.
type Signup struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeEmail lowercases and trims an address so the unique index treats
// User@Example.com and user@example.com as the same signup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Add inserts a new signup and returns its ID. Source records which page or
// campaign the signup came from.
func Add(email, source string) (int, error) {
	res, err := db.Exec(`INSERT INTO WaitlistSignup (email, source) VALUES (?, ?)`,
		NormalizeEmail(email), source)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, ErrDuplicate
		}
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// Count returns the number of signups.
func Count() (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM WaitlistSignup`).Scan(&count)
	return count, err
}

// All returns every signup, newest first.
func All() ([]Signup, error) {
	rows, err := db.Query(`SELECT id, email, source, created_at
		FROM WaitlistSignup ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []Signup
	for rows.Next() {
		var s Signup
		if err := rows.Scan(&s.ID, &s.Email, &s.Source, &s.CreatedAt); err != nil {
			return nil, err
		}
		signups = append(signups, s)
	}
	return signups, rows.Err()
}

// Remove deletes a signup by ID.
func Remove(id int) error {
	_, err := db.Exec(`DELETE FROM WaitlistSignup WHERE id = ?`, id)
	return err
}
