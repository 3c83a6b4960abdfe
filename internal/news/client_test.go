package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_TopStories(t *testing.T) {
	tests := []struct {
		name           string
		serverResponse func(w http.ResponseWriter, r *http.Request)
		expectCount    int
		expectError    bool
		expectStatus   int
	}{
		{
			name: "successful fetch",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("api-key") != "test-key" {
					t.Errorf("expected api-key query param, got %q", r.URL.Query().Get("api-key"))
				}
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":"OK","results":[{"title":"One"},{"title":"Two"}]}`))
			},
			expectCount: 2,
		},
		{
			name: "missing results field tolerated",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"status":"OK"}`))
			},
			expectCount: 0,
		},
		{
			name: "server error carries status code",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectError:  true,
			expectStatus: http.StatusInternalServerError,
		},
		{
			name: "unauthorized carries status code",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			expectError:  true,
			expectStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed body",
			serverResponse: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"results": nope`))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResponse))
			defer server.Close()

			client := NewClient(server.URL, "test-key", 5*time.Second)
			articles, err := client.TopStories(context.Background(), CategoryScience)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.expectStatus != 0 {
					var statusErr *StatusError
					if !errors.As(err, &statusErr) {
						t.Fatalf("expected *StatusError, got %T: %v", err, err)
					}
					if statusErr.Code != tt.expectStatus {
						t.Errorf("expected status %d, got %d", tt.expectStatus, statusErr.Code)
					}
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(articles) != tt.expectCount {
				t.Errorf("expected %d articles, got %d", tt.expectCount, len(articles))
			}
		})
	}
}

func TestClient_TopStoriesEndpointPath(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", 5*time.Second)

	if _, err := client.TopStories(context.Background(), CategoryAll); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requested != "/home.json" {
		t.Errorf("expected /home.json for All, got %s", requested)
	}

	if _, err := client.TopStories(context.Background(), CategoryWorld); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requested != "/world.json" {
		t.Errorf("expected /world.json for World, got %s", requested)
	}
}

func TestClient_NoKeyFallsBackToRSS(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Science.xml" {
			t.Errorf("expected RSS path /Science.xml, got %s", r.URL.Path)
		}
		w.Write([]byte(`<?xml version="1.0"?>
<rss version="2.0"><channel><title>Science</title>
<item><title>Comet spotted</title><description>A bright comet</description><link>https://example.com/comet</link></item>
</channel></rss>`))
	}))
	defer server.Close()

	client := NewClient("", "", 5*time.Second)
	client.rss.base = server.URL

	articles, err := client.TopStories(context.Background(), CategoryScience)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	if articles[0].Title != "Comet spotted" {
		t.Errorf("unexpected title %q", articles[0].Title)
	}
	if articles[0].URL != "https://example.com/comet" {
		t.Errorf("unexpected URL %q", articles[0].URL)
	}
	if articles[0].Section != "Science" {
		t.Errorf("expected section Science, got %q", articles[0].Section)
	}
}

func TestRSSFetcher_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := newRSSFetcher(5 * time.Second)
	fetcher.base = server.URL

	_, err := fetcher.Fetch(context.Background(), CategoryWorld)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 StatusError, got %v", err)
	}
}

func TestSectionFile(t *testing.T) {
	if got := sectionFile(CategoryAll); got != "HomePage" {
		t.Errorf("expected HomePage for All, got %q", got)
	}
	if got := sectionFile(CategoryTechnology); got != "Technology" {
		t.Errorf("expected Technology, got %q", got)
	}
}
