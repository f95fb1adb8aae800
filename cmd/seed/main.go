package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/jwt"
)

var baseURL = func() string {
	if u := os.Getenv("API_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}()

var client = &http.Client{Timeout: 10 * time.Second}

type envelope struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	n := 5
	ids := make([]string, 0, n)
	tokens := make([]string, 0, n)

	for i := 0; i < n; i++ {
		id := createAccount()
		tok, err := jwt.Make(id)
		if err != nil {
			log.Fatalf("mint token: %v", err)
		}
		ids = append(ids, id)
		tokens = append(tokens, tok)
	}

	var tweetIDs []uint
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			tweetIDs = append(tweetIDs, createTweet(tokens[i]))
		}
	}

	for i := 0; i < n; i++ {
		target := ids[(i+1)%n]
		post(tokens[i], fmt.Sprintf("/follow/%s", target), nil)
		post(tokens[i], fmt.Sprintf("/tweets/%d/like", tweetIDs[(i*2)%len(tweetIDs)]), nil)
		post(tokens[i], fmt.Sprintf("/tweets/%d/retweet", tweetIDs[(i*3+1)%len(tweetIDs)]),
			map[string]string{"caption": gofakeit.Sentence(5)})
	}

	getFeed(0, 25)
	log.Println("seeding complete")
}

func createAccount() string {
	body := map[string]string{
		"username":     gofakeit.Username(),
		"display_name": gofakeit.Name(),
		"bio":          gofakeit.Sentence(8),
		"location":     gofakeit.City(),
	}
	raw := post("", "/accounts", body)
	var a struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &a); err != nil || a.ID == "" {
		log.Fatalf("create account: bad response %s", raw)
	}
	log.Printf("created account %s (%s)", body["username"], a.ID)
	return a.ID
}

func createTweet(token string) uint {
	raw := post(token, "/tweets", map[string]string{"content": gofakeit.Sentence(12)})
	var t struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(raw, &t); err != nil || t.ID == 0 {
		log.Fatalf("create tweet: bad response %s", raw)
	}
	return t.ID
}

func getFeed(page, size int) {
	resp, err := client.Get(fmt.Sprintf("%s/tweets?page=%d&page_size=%d", baseURL, page, size))
	if err != nil {
		log.Fatalf("get feed: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	log.Printf("feed page %d: %d tweets", page, env.Count)
}

func post(token, path string, body any) json.RawMessage {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+path, &buf)
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	if resp.StatusCode >= 300 {
		log.Printf("POST %s: status %d", path, resp.StatusCode)
	}
	return env.Data
}
