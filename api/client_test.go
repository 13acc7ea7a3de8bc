package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
)

// readTestFile reads a test file from the testdata directory
func readTestFile(t *testing.T, filename string) []byte {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", filename))
	if err != nil {
		t.Fatalf("Failed to read test file %s: %v", filename, err)
	}
	return content
}

// newTestServer serves body for every request and records the last request URI
func newTestServer(t *testing.T, status int, body []byte, lastURI *string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastURI != nil {
			*lastURI = r.URL.RequestURI()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestFetchMenus(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	want := []Menu{
		{
			ID:          "abc",
			Title:       "Pasta",
			Description: "Penne with tomato sauce and basil",
			Date:        date,
			Channel:     1,
			Label:       1,
			Prices: []Price{
				{Tag: "student", Amount: 3.5},
				{Tag: "guest", Amount: 5.0},
			},
			VoteBalance: 4,
		},
		{
			ID:          "def",
			Title:       "Schnitzel",
			Date:        date,
			Channel:     2,
			Prices:      []Price{},
			VoteBalance: -2,
		},
	}

	tests := []struct {
		name    string
		sel     Selection
		wantURI string
	}{
		{
			name:    "Today",
			sel:     Today(),
			wantURI: "/menu/date",
		},
		{
			name:    "Date",
			sel:     OnDate(date),
			wantURI: "/menu/date?date=1705276800000",
		},
		{
			name:    "Upcoming",
			sel:     Upcoming(),
			wantURI: "/menu/upcoming",
		},
		{
			name:    "Search escapes query",
			sel:     Search("pasta & sauce"),
			wantURI: "/menu/search?query=pasta+%26+sauce",
		},
	}

	body := readTestFile(t, "menus.json")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var uri string
			client := newTestServer(t, http.StatusOK, body, &uri)

			got, err := client.Menus(context.Background(), tt.sel)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if uri != tt.wantURI {
				t.Errorf("Requested %q, want %q", uri, tt.wantURI)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Menus() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFetchMenus_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        []byte
		wantErrCode any
	}{
		{
			name:        "Malformed JSON",
			status:      http.StatusOK,
			body:        []byte(`[{"id": "abc",`),
			wantErrCode: ResponseParseFailure,
		},
		{
			name:        "Object instead of array",
			status:      http.StatusOK,
			body:        []byte(`{"id": "abc"}`),
			wantErrCode: ResponseParseFailure,
		},
		{
			name:        "Missing title",
			status:      http.StatusOK,
			body:        readTestFile(t, "menus_missing_title.json"),
			wantErrCode: ResponseParseFailure,
		},
		{
			name:        "Missing price amount",
			status:      http.StatusOK,
			body:        readTestFile(t, "menus_missing_price.json"),
			wantErrCode: ResponseParseFailure,
		},
		{
			name:        "Server error",
			status:      http.StatusInternalServerError,
			body:        []byte(`oops`),
			wantErrCode: ConnectionFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, tt.status, tt.body, nil)

			_, err := client.FetchUpcoming(context.Background())
			if err == nil {
				t.Fatalf("Expected error %v, got nil", tt.wantErrCode)
			}
			if !failure.Is(err, tt.wantErrCode) {
				t.Errorf("Expected error %v, got %v", tt.wantErrCode, err)
			}
		})
	}
}

func TestFetchMenus_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := NewClient(base).FetchToday(context.Background())
	if !failure.Is(err, ConnectionFailure) {
		t.Errorf("Expected error %v, got %v", ConnectionFailure, err)
	}
}

func TestFetchInfo(t *testing.T) {
	var uri string
	client := newTestServer(t, http.StatusOK, readTestFile(t, "info.json"), &uri)

	got, err := client.FetchInfo(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := Info{
		Version: "1.4.2",
		Started: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FetchInfo() mismatch (-want +got):\n%s", diff)
	}
	if uri != "/" {
		t.Errorf("Requested %q, want %q", uri, "/")
	}

	client = newTestServer(t, http.StatusOK, []byte(`{"version": "1.4.2"}`), nil)
	if _, err := client.FetchInfo(context.Background()); !failure.Is(err, ResponseParseFailure) {
		t.Errorf("Expected error %v, got %v", ResponseParseFailure, err)
	}
}

func TestFetchMenuCount(t *testing.T) {
	var uri string
	client := newTestServer(t, http.StatusOK, []byte(`{"amount": 42}`), &uri)

	got, err := client.FetchMenuCount(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != 42 {
		t.Errorf("FetchMenuCount() = %d, want 42", got)
	}
	if uri != "/stats/menu" {
		t.Errorf("Requested %q, want %q", uri, "/stats/menu")
	}

	client = newTestServer(t, http.StatusOK, []byte(`{"total": 42}`), nil)
	_, err = client.FetchMenuCount(context.Background())
	if !failure.Is(err, ResponseParseFailure) {
		t.Errorf("Expected error %v, got %v", ResponseParseFailure, err)
	}
	if msg := failure.MessageOf(err).String(); msg != "Couldn't find property 'amount' on menu stats endpoint" {
		t.Errorf("Unexpected message %q", msg)
	}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "Base without trailing slash",
			base: "https://api.example.com",
			path: "menu/upcoming",
			want: "https://api.example.com/menu/upcoming",
		},
		{
			name: "Base with trailing slash",
			base: "https://api.example.com/",
			path: "menu/upcoming",
			want: "https://api.example.com/menu/upcoming",
		},
		{
			name: "Base with path prefix",
			base: "https://example.com/api/",
			path: "stats/menu",
			want: "https://example.com/api/stats/menu",
		},
		{
			name: "Root",
			base: "https://api.example.com",
			path: "",
			want: "https://api.example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewClient(tt.base).endpoint(tt.path, nil)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("endpoint() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := NewClient("not a url").endpoint("menu/date", nil); !failure.Is(err, ConnectionFailure) {
		t.Errorf("Expected error %v, got %v", ConnectionFailure, err)
	}
}

func TestInDays(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	// Still January 31st in UTC, the local calendar day wins.
	now := time.Date(2024, time.February, 1, 0, 30, 0, 0, loc)

	tests := []struct {
		offset int
		want   time.Time
	}{
		{offset: 0, want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{offset: 1, want: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)},
		{offset: 29, want: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got := InDays(now, tt.offset)
		if got.Kind != SelectDate || !got.Date.Equal(tt.want) {
			t.Errorf("InDays(%d) = %v %v, want date %v", tt.offset, got.Kind, got.Date, tt.want)
		}
	}
}
