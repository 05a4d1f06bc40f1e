//go:build ignore
// +build ignore

// Seeds a running server with demo expenses, assets and liabilities through
// the JSON API. Run with: go run scripts/seed-data.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

func main() {
	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8111"
	}

	userID := os.Getenv("USER_ID")
	if userID == "" {
		userID = "local-dev-user"
	}

	log.Printf("Seeding data for user: %s", userID)
	log.Printf("API URL: %s", apiURL)

	client := &http.Client{Timeout: 10 * time.Second}

	if err := seedExpenses(client, apiURL, userID); err != nil {
		log.Fatalf("Failed to seed expenses: %v", err)
	}
	if err := seedAssets(client, apiURL, userID); err != nil {
		log.Fatalf("Failed to seed assets: %v", err)
	}
	if err := seedLiabilities(client, apiURL, userID); err != nil {
		log.Fatalf("Failed to seed liabilities: %v", err)
	}

	log.Println("Done")
}

func seedExpenses(client *http.Client, apiURL, userID string) error {
	now := time.Now().UTC()
	expenses := []map[string]any{
		{"description": "Grocery run", "amount": 85.20, "date": now.AddDate(0, 0, -28).Format(time.RFC3339)},
		{"description": "Netflix subscription", "amount": 15.99, "date": now.AddDate(0, 0, -27).Format(time.RFC3339)},
		{"description": "Spotify monthly", "amount": 9.99, "date": now.AddDate(0, 0, -27).Format(time.RFC3339)},
		{"description": "Uber to airport", "amount": 42.00, "date": now.AddDate(0, 0, -25).Format(time.RFC3339)},
		{"description": "Restaurant dinner", "amount": 68.50, "date": now.AddDate(0, 0, -21).Format(time.RFC3339)},
		{"description": "New TV", "amount": 450.00, "date": now.AddDate(0, 0, -20).Format(time.RFC3339)},
		{"description": "Coffee", "amount": 4.50, "date": now.AddDate(0, 0, -20).Add(45 * time.Minute).Format(time.RFC3339)},
		{"description": "Electric bill", "amount": 120.00, "date": now.AddDate(0, 0, -15).Format(time.RFC3339)},
		{"description": "Gym membership", "amount": 40.00, "date": now.AddDate(0, 0, -14).Format(time.RFC3339)},
		{"description": "Grocery run", "amount": 91.10, "date": now.AddDate(0, 0, -14).Format(time.RFC3339)},
		{"description": "Pharmacy", "amount": 23.80, "date": now.AddDate(0, 0, -10).Format(time.RFC3339)},
		{"description": "Cinema tickets", "amount": 32.00, "date": now.AddDate(0, 0, -7).Format(time.RFC3339)},
		{"description": "Grocery run", "amount": 78.40, "date": now.AddDate(0, 0, -7).Format(time.RFC3339)},
		{"description": "Gas station", "amount": 55.00, "date": now.AddDate(0, 0, -3).Format(time.RFC3339)},
	}

	for _, e := range expenses {
		e["userId"] = userID
		if err := post(client, apiURL+"/api/expenses", e); err != nil {
			return fmt.Errorf("expense %q: %w", e["description"], err)
		}
	}
	log.Printf("Seeded %d expenses", len(expenses))
	return nil
}

func seedAssets(client *http.Client, apiURL, userID string) error {
	assets := []map[string]any{
		{"userId": userID, "name": "Index fund portfolio", "category": "investments", "value": 15000.0},
		{"userId": userID, "name": "Online course", "category": "cashFlow", "value": 2400.0},
	}
	for _, a := range assets {
		if err := post(client, apiURL+"/api/assets", a); err != nil {
			return fmt.Errorf("asset %q: %w", a["name"], err)
		}
	}
	log.Printf("Seeded %d assets", len(assets))
	return nil
}

func seedLiabilities(client *http.Client, apiURL, userID string) error {
	liabilities := []map[string]any{
		{"userId": userID, "name": "Credit card balance", "category": "shortTerm", "amount": 1200.0},
		{"userId": userID, "name": "Car loan", "category": "consumer", "amount": 8500.0},
	}
	for _, l := range liabilities {
		if err := post(client, apiURL+"/api/liabilities", l); err != nil {
			return fmt.Errorf("liability %q: %w", l["name"], err)
		}
	}
	log.Printf("Seeded %d liabilities", len(liabilities))
	return nil
}

func post(client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
