package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/pets"
	"conversational-assistant/internal/session"
	"conversational-assistant/pkg/petfinder"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestBuildSearchParams(t *testing.T) {
	tests := []struct {
		name string
		text string
		want petfinder.SearchParams
	}{
		{
			name: "Species And City State",
			text: "any small dogs in Austin, TX",
			want: petfinder.SearchParams{Type: "dog", Location: "Austin, TX", DistanceMiles: 100, Limit: 5, Size: "small"},
		},
		{
			name: "Puppy Reads As Baby Dog",
			text: "puppies near 90210",
			want: petfinder.SearchParams{Type: "dog", Location: "90210", DistanceMiles: 100, Limit: 5, Age: "baby"},
		},
		{
			name: "Good With Dogs Does Not Flip Species",
			text: "a cat good with dogs",
			want: petfinder.SearchParams{Type: "cat", Limit: 5, GoodWithDogs: true},
		},
		{
			name: "Animal Word Never Leaks Into Location",
			text: "adopt a rabbit",
			want: petfinder.SearchParams{Type: "rabbit", Limit: 5},
		},
		{
			name: "Generic Pet Defaults To Dog",
			text: "show me adoptable pets",
			want: petfinder.SearchParams{Type: "dog", Limit: 5},
		},
		{
			name: "Qualifiers",
			text: "senior female cat good with kids in Portland",
			want: petfinder.SearchParams{Type: "cat", Location: "Portland", DistanceMiles: 100, Limit: 5, Age: "senior", Gender: "female", GoodWithChildren: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := buildSearchParams(tc.text, "")
			if got != tc.want {
				t.Errorf("buildSearchParams(%q)\n got %+v\nwant %+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestBuildSearchParamsSessionLocation(t *testing.T) {
	got := buildSearchParams("any kittens available", "Denver")
	if got.Location != "Denver" {
		t.Errorf("location = %q, want session fallback Denver", got.Location)
	}
	if got.DistanceMiles != 100 {
		t.Errorf("distance = %d, want 100", got.DistanceMiles)
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		if gotQuery.Get("location") == "Nowhere" {
			w.Write([]byte(`{"animals": [], "pagination": {}}`))
			return
		}
		w.Write([]byte(`{
			"animals": [{
				"id": 7, "type": "Dog", "name": "Maple", "age": "Young", "gender": "Female",
				"breeds": {"primary": "Husky", "mixed": true},
				"contact": {"address": {"city": "Austin", "state": "TX"}},
				"url": "https://example.org/maple"
			}],
			"pagination": {"total_count": 1}
		}`))
	}))
	defer ts.Close()

	client := petfinder.NewClient("id", "secret")
	client.SetAPIURL(ts.URL)
	client.SetHTTPClient(&http.Client{})
	sessions := session.New(16, time.Minute)
	uc := New(&mockLogger{}, client, sessions)

	t.Run("Success Flow", func(t *testing.T) {
		reply, err := uc.Search(ctx, sc, pets.SearchInput{Text: "dogs in Austin, TX"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Maple") || !strings.Contains(reply.Text, "Husky mix") {
			t.Errorf("unexpected reply: %s", reply.Text)
		}
		if gotQuery.Get("status") != "adoptable" {
			t.Errorf("status = %s, want adoptable", gotQuery.Get("status"))
		}

		state, ok := sessions.Get("user-1")
		if !ok || state.LastLocation != "Austin, TX" {
			t.Errorf("expected remembered location Austin, TX, got %+v", state)
		}
	})

	t.Run("No Results Flow", func(t *testing.T) {
		reply, err := uc.Search(ctx, sc, pets.SearchInput{Text: "dogs in Nowhere"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "No adoptable animals") {
			t.Errorf("unexpected reply: %s", reply.Text)
		}
	})
}
