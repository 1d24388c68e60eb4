package main

import (
	"fmt"
	"log"
	"os"

	"github.com/collabverse/site/config"
	"github.com/collabverse/site/contact"
	"github.com/collabverse/site/db"
	"github.com/collabverse/site/waitlist"
)

func main() {
	dbFile := config.DatabaseURL

	// Remove old DB if exists
	if _, err := os.Stat(dbFile); err == nil {
		if err := os.Remove(dbFile); err != nil {
			log.Fatalf("Failed to remove old DB: %v", err)
		}
	}

	// Create new DB with the schema
	if err := db.Init(dbFile); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Seed waitlist signups
	signups := []struct {
		email  string
		source string
	}{
		{"ada@example.com", "home"},
		{"grace@example.com", "home"},
		{"linus@example.com", "footer"},
		{"margaret@example.com", "about"},
	}
	for _, s := range signups {
		if _, err := waitlist.Add(s.email, s.source); err != nil {
			log.Fatalf("Failed to insert signup %s: %v", s.email, err)
		}
	}
	fmt.Printf("Inserted %d waitlist signups\n", len(signups))

	// Seed contact messages
	messages := []struct {
		name    string
		email   string
		subject string
		body    string
	}{
		{"Ada Lovelace", "ada@example.com", "Early access",
			"We are a team of 12 and would love to try CollabVerse before launch."},
		{"Grace Hopper", "grace@example.com", "Pricing question",
			"Does the Team plan include guest seats for contractors?"},
	}
	for _, m := range messages {
		if _, err := contact.Add(m.name, m.email, m.subject, m.body); err != nil {
			log.Fatalf("Failed to insert message from %s: %v", m.name, err)
		}
	}
	fmt.Printf("Inserted %d contact messages\n", len(messages))

	fmt.Printf("Seeded %s\n", dbFile)
}
