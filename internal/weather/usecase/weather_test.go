package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conversational-assistant/internal/model"
	"conversational-assistant/internal/session"
	"conversational-assistant/internal/weather"
	"conversational-assistant/pkg/weatherapi"
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

func newWeatherTestServer(t *testing.T, lastQuery *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			q := map[string]string{}
			for k := range r.URL.Query() {
				q[k] = r.URL.Query().Get(k)
			}
			q["path"] = r.URL.Path
			*lastQuery = q
		}

		switch r.URL.Path {
		case "/current.json":
			w.Write([]byte(`{
				"location": {"name": "Tokyo", "country": "Japan"},
				"current": {"temp_c": 20, "condition": {"text": "Clear"}, "humidity": 55,
					"air_quality": {"pm2_5": 8.1, "us-epa-index": 1}}
			}`))
		case "/forecast.json":
			w.Write([]byte(`{
				"location": {"name": "Tokyo", "country": "Japan"},
				"current": {"temp_c": 20},
				"forecast": {"forecastday": [
					{"date": "2025-03-01", "day": {"maxtemp_c": 22, "mintemp_c": 12, "condition": {"text": "Sunny"}}},
					{"date": "2025-03-02", "day": {"maxtemp_c": 19, "mintemp_c": 11, "condition": {"text": "Rain"}, "daily_chance_of_rain": 80}}
				]}
			}`))
		case "/astronomy.json":
			w.Write([]byte(`{
				"location": {"name": "Tokyo", "country": "Japan"},
				"astronomy": {"astro": {"sunrise": "06:01 AM", "sunset": "05:45 PM", "moon_phase": "Full Moon"}}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestUseCase(ts *httptest.Server) (*implUseCase, session.Store) {
	client := weatherapi.NewClient("test-key")
	client.SetAPIURL(ts.URL)
	sessions := session.New(16, time.Minute)
	return New(&mockLogger{}, client, sessions), sessions
}

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Location From Query", func(t *testing.T) {
		ts := newWeatherTestServer(t, nil)
		defer ts.Close()
		uc, sessions := newTestUseCase(ts)

		reply, err := uc.Current(ctx, sc, weather.QueryInput{Text: "weather in Tokyo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Tokyo") || !strings.Contains(reply.Text, "Clear") {
			t.Errorf("unexpected reply: %s", reply.Text)
		}

		state, ok := sessions.Get("user-1")
		if !ok || state.LastLocation != "Tokyo" {
			t.Errorf("expected session to remember Tokyo, got %+v", state)
		}
	})

	t.Run("Location From Session", func(t *testing.T) {
		ts := newWeatherTestServer(t, nil)
		defer ts.Close()
		uc, sessions := newTestUseCase(ts)
		sessions.RememberLocation("user-1", "Tokyo")

		reply, err := uc.Current(ctx, sc, weather.QueryInput{Text: "what about now"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Tokyo") {
			t.Errorf("expected session location to be used, got: %s", reply.Text)
		}
	})

	t.Run("No Location Asks", func(t *testing.T) {
		ts := newWeatherTestServer(t, nil)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		reply, err := uc.Current(ctx, sc, weather.QueryInput{Text: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Which location") {
			t.Errorf("expected a location prompt, got: %s", reply.Text)
		}
	})

	t.Run("Crypto Wording Never Reads As Location", func(t *testing.T) {
		ts := newWeatherTestServer(t, nil)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		reply, err := uc.Current(ctx, sc, weather.QueryInput{Text: "what is the SOL price"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "Which location") {
			t.Errorf("expected a location prompt, got: %s", reply.Text)
		}
	})
}

func TestForecast(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Default Days", func(t *testing.T) {
		var lastQuery map[string]string
		ts := newWeatherTestServer(t, &lastQuery)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		reply, err := uc.Forecast(ctx, sc, weather.QueryInput{Text: "forecast for Tokyo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery["days"] != "5" {
			t.Errorf("days = %s, want default 5", lastQuery["days"])
		}
		if !strings.Contains(reply.Text, "2025-03-02") {
			t.Errorf("unexpected reply: %s", reply.Text)
		}
	})

	t.Run("Explicit Days", func(t *testing.T) {
		var lastQuery map[string]string
		ts := newWeatherTestServer(t, &lastQuery)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		if _, err := uc.Forecast(ctx, sc, weather.QueryInput{Text: "14 day forecast for Tokyo"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery["days"] != "14" {
			t.Errorf("days = %s, want 14", lastQuery["days"])
		}
	})

	t.Run("Next Week Reads As Seven", func(t *testing.T) {
		var lastQuery map[string]string
		ts := newWeatherTestServer(t, &lastQuery)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		if _, err := uc.Forecast(ctx, sc, weather.QueryInput{Text: "forecast for Tokyo next week"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery["days"] != "7" {
			t.Errorf("days = %s, want 7", lastQuery["days"])
		}
	})
}

func TestAstronomyAndAirQuality(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("Astronomy", func(t *testing.T) {
		var lastQuery map[string]string
		ts := newWeatherTestServer(t, &lastQuery)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		reply, err := uc.Astronomy(ctx, sc, weather.QueryInput{Text: "sunset in Tokyo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(reply.Text, "05:45 PM") || !strings.Contains(reply.Text, "Full Moon") {
			t.Errorf("unexpected reply: %s", reply.Text)
		}
		if lastQuery["dt"] == "" {
			t.Error("expected a dt date param")
		}
	})

	t.Run("Air Quality", func(t *testing.T) {
		var lastQuery map[string]string
		ts := newWeatherTestServer(t, &lastQuery)
		defer ts.Close()
		uc, _ := newTestUseCase(ts)

		reply, err := uc.AirQuality(ctx, sc, weather.QueryInput{Text: "air quality in Tokyo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastQuery["aqi"] != "yes" {
			t.Errorf("aqi param = %s, want yes", lastQuery["aqi"])
		}
		if !strings.Contains(reply.Text, "Good") {
			t.Errorf("expected EPA label in reply: %s", reply.Text)
		}
	})
}

func TestFreeTextDispatch(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	var lastQuery map[string]string
	ts := newWeatherTestServer(t, &lastQuery)
	defer ts.Close()
	uc, _ := newTestUseCase(ts)

	tests := []struct {
		name     string
		text     string
		wantPath string
	}{
		{"Forecast Terms", "forecast for Tokyo", "/forecast.json"},
		{"Astronomy Terms", "when is sunrise in Tokyo", "/astronomy.json"},
		{"AQI Terms", "air quality in Tokyo", "/current.json"},
		{"Default Current", "weather in Tokyo", "/current.json"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.FreeText(ctx, sc, weather.QueryInput{Text: tc.text}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lastQuery["path"] != tc.wantPath {
				t.Errorf("path = %s, want %s", lastQuery["path"], tc.wantPath)
			}
		})
	}
}
