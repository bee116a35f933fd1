package usecase

import (
	"context"
	"regexp"
	"time"

	"conversational-assistant/internal/extract"
	"conversational-assistant/internal/model"
	"conversational-assistant/internal/weather"
	"conversational-assistant/pkg/weatherapi"
)

var (
	astronomyTermsPattern = regexp.MustCompile(`(?i)\b(?:sunrise|sunset|astronomy|moon)\b`)
	aqiTermsPattern       = regexp.MustCompile(`(?i)\b(?:aqi|air quality|pollution|smog)\b`)
	forecastTermsPattern  = regexp.MustCompile(`(?i)\b(?:forecast|tomorrow|next week|this week|extended)\b`)
)

// Current reports live conditions for the resolved location.
func (uc *implUseCase) Current(ctx context.Context, sc model.Scope, input weather.QueryInput) (weather.Reply, error) {
	loc, ok := uc.resolveLocation(sc, input.Text)
	if !ok {
		return weather.Reply{Text: msgAskLocation}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s location=%q", LogPrefixCurrent, sc.UserID, loc)

	resp, err := uc.client.Current(ctx, loc, false)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixCurrent, err)
		return weather.Reply{}, err
	}

	uc.sessions.RememberLocation(sc.UserID, loc)
	return weather.Reply{Text: formatCurrent(resp)}, nil
}

// Forecast reports a multi-day outlook. An explicit horizon in the text
// wins; otherwise the default applies. Out-of-range horizons are clamped.
func (uc *implUseCase) Forecast(ctx context.Context, sc model.Scope, input weather.QueryInput) (weather.Reply, error) {
	loc, ok := uc.resolveLocation(sc, input.Text)
	if !ok {
		return weather.Reply{Text: msgAskLocation}, nil
	}

	days, found := extract.ExtractForecastDays(input.Text)
	if !found {
		days = extract.DefaultForecastDays
	}
	days = extract.ClampDays(days, extract.MaxForecastAPIDays)

	uc.l.Infof(ctx, "%s: user=%s location=%q days=%d", LogPrefixForecast, sc.UserID, loc, days)

	resp, err := uc.client.Forecast(ctx, loc, days, false)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixForecast, err)
		return weather.Reply{}, err
	}

	uc.sessions.RememberLocation(sc.UserID, loc)
	return weather.Reply{Text: formatForecast(resp)}, nil
}

// Astronomy reports sun and moon data for today at the resolved location.
func (uc *implUseCase) Astronomy(ctx context.Context, sc model.Scope, input weather.QueryInput) (weather.Reply, error) {
	loc, ok := uc.resolveLocation(sc, input.Text)
	if !ok {
		return weather.Reply{Text: msgAskLocation}, nil
	}

	date := time.Now().Format(weatherapi.DateLayout)
	uc.l.Infof(ctx, "%s: user=%s location=%q date=%s", LogPrefixAstronomy, sc.UserID, loc, date)

	resp, err := uc.client.Astronomy(ctx, loc, date)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixAstronomy, err)
		return weather.Reply{}, err
	}

	uc.sessions.RememberLocation(sc.UserID, loc)
	return weather.Reply{Text: formatAstronomy(resp)}, nil
}

// AirQuality reports pollutant readings and the US EPA index.
func (uc *implUseCase) AirQuality(ctx context.Context, sc model.Scope, input weather.QueryInput) (weather.Reply, error) {
	loc, ok := uc.resolveLocation(sc, input.Text)
	if !ok {
		return weather.Reply{Text: msgAskLocation}, nil
	}

	uc.l.Infof(ctx, "%s: user=%s location=%q", LogPrefixAQI, sc.UserID, loc)

	resp, err := uc.client.Current(ctx, loc, true)
	if err != nil {
		uc.l.Errorf(ctx, "%s: provider call failed: %v", LogPrefixAQI, err)
		return weather.Reply{}, err
	}

	uc.sessions.RememberLocation(sc.UserID, loc)
	return weather.Reply{Text: formatAirQuality(resp)}, nil
}

// FreeText picks the weather operation from the wording of a routed
// message. Forecast terms win over current conditions; sun/moon and air
// quality wording redirect to their handlers.
func (uc *implUseCase) FreeText(ctx context.Context, sc model.Scope, input weather.QueryInput) (weather.Reply, error) {
	switch {
	case astronomyTermsPattern.MatchString(input.Text):
		return uc.Astronomy(ctx, sc, input)
	case aqiTermsPattern.MatchString(input.Text):
		return uc.AirQuality(ctx, sc, input)
	case forecastTermsPattern.MatchString(input.Text):
		return uc.Forecast(ctx, sc, input)
	default:
		return uc.Current(ctx, sc, input)
	}
}

// resolveLocation tries the message first, then the session's last
// location. A false return means the caller should ask for one.
func (uc *implUseCase) resolveLocation(sc model.Scope, text string) (string, bool) {
	if loc, ok := extract.ExtractLocation(text); ok {
		return loc, true
	}
	if state, ok := uc.sessions.Get(sc.UserID); ok && state.LastLocation != "" {
		return state.LastLocation, true
	}
	return "", false
}
