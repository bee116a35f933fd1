package usecase

import (
	"fmt"
	"strings"

	"conversational-assistant/internal/extract"
	"conversational-assistant/pkg/weatherapi"
)

func placeName(loc weatherapi.Location) string {
	if loc.Region != "" && loc.Region != loc.Name {
		return fmt.Sprintf("%s, %s", loc.Name, loc.Region)
	}
	if loc.Country != "" {
		return fmt.Sprintf("%s, %s", loc.Name, loc.Country)
	}
	return loc.Name
}

func formatCurrent(resp *weatherapi.CurrentResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌤 *%s*\n", placeName(resp.Location))
	fmt.Fprintf(&b, "%s, %.1f°C (%.1f°F), feels like %.1f°C\n",
		resp.Current.Condition.Text, resp.Current.TempC, resp.Current.TempF, resp.Current.FeelslikeC)
	fmt.Fprintf(&b, "Humidity %d%%, wind %.0f km/h %s",
		resp.Current.Humidity, resp.Current.WindKph, resp.Current.WindDir)
	return b.String()
}

func formatForecast(resp *weatherapi.ForecastResponse) string {
	var b strings.Builder
	days := resp.Forecast.ForecastDay
	fmt.Fprintf(&b, "📅 *%d-day forecast for %s*\n", len(days), placeName(resp.Location))

	// Detailed lines only for the first window; very long horizons get a
	// compact tail so the message stays readable on a phone.
	for i, d := range days {
		if i < extract.MaxDetailedForecastDays {
			fmt.Fprintf(&b, "%s: %s, %.0f°C to %.0f°C, rain %d%%\n",
				d.Date, d.Day.Condition.Text, d.Day.MinTempC, d.Day.MaxTempC, d.Day.DailyChanceOfRain)
		} else {
			fmt.Fprintf(&b, "%s: %.0f°C to %.0f°C\n", d.Date, d.Day.MinTempC, d.Day.MaxTempC)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatAstronomy(resp *weatherapi.AstronomyResponse) string {
	a := resp.Astronomy.Astro
	var b strings.Builder
	fmt.Fprintf(&b, "🌅 *%s*\n", placeName(resp.Location))
	fmt.Fprintf(&b, "Sunrise %s, sunset %s\n", a.Sunrise, a.Sunset)
	fmt.Fprintf(&b, "Moonrise %s, moonset %s\n", a.Moonrise, a.Moonset)
	fmt.Fprintf(&b, "Moon phase: %s", a.MoonPhase)
	return b.String()
}

func formatAirQuality(resp *weatherapi.CurrentResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌬 *Air quality in %s*\n", placeName(resp.Location))

	aq := resp.Current.AirQuality
	if aq == nil {
		b.WriteString("No air quality data is available for this location.")
		return b.String()
	}
	fmt.Fprintf(&b, "%s (US EPA index %d)\n", epaLabel(aq.USEPAIndex), aq.USEPAIndex)
	fmt.Fprintf(&b, "PM2.5 %.1f, PM10 %.1f, O3 %.1f, NO2 %.1f", aq.PM25, aq.PM10, aq.O3, aq.NO2)
	return b.String()
}

func epaLabel(index int) string {
	switch index {
	case 1:
		return "Good"
	case 2:
		return "Moderate"
	case 3:
		return "Unhealthy for sensitive groups"
	case 4:
		return "Unhealthy"
	case 5:
		return "Very unhealthy"
	case 6:
		return "Hazardous"
	default:
		return "Unknown"
	}
}
