package weatherapi

// Location identifies the place a response is about.
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

// Condition is a short textual description of the sky.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// AirQuality carries pollutant readings and the US EPA index (1 good
// through 6 hazardous).
type AirQuality struct {
	CO         float64 `json:"co"`
	NO2        float64 `json:"no2"`
	O3         float64 `json:"o3"`
	SO2        float64 `json:"so2"`
	PM25       float64 `json:"pm2_5"`
	PM10       float64 `json:"pm10"`
	USEPAIndex int     `json:"us-epa-index"`
}

// Current is the live observation block.
type Current struct {
	TempC      float64     `json:"temp_c"`
	TempF      float64     `json:"temp_f"`
	FeelslikeC float64     `json:"feelslike_c"`
	FeelslikeF float64     `json:"feelslike_f"`
	Condition  Condition   `json:"condition"`
	WindKph    float64     `json:"wind_kph"`
	WindMph    float64     `json:"wind_mph"`
	WindDir    string      `json:"wind_dir"`
	Humidity   int         `json:"humidity"`
	UV         float64     `json:"uv"`
	AirQuality *AirQuality `json:"air_quality,omitempty"`
}

// Day aggregates one forecast day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MaxTempF          float64   `json:"maxtemp_f"`
	MinTempC          float64   `json:"mintemp_c"`
	MinTempF          float64   `json:"mintemp_f"`
	AvgTempC          float64   `json:"avgtemp_c"`
	Condition         Condition `json:"condition"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int       `json:"daily_chance_of_snow"`
	AvgHumidity       float64   `json:"avghumidity"`
	MaxWindKph        float64   `json:"maxwind_kph"`
	UV                float64   `json:"uv"`
}

// Astro carries sun and moon times for one day.
type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination string `json:"moon_illumination"`
}

// ForecastDay is one entry of the forecast window.
type ForecastDay struct {
	Date  string `json:"date"`
	Day   Day    `json:"day"`
	Astro Astro  `json:"astro"`
}

// CurrentResponse is the /current.json payload.
type CurrentResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// ForecastResponse is the /forecast.json payload.
type ForecastResponse struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

// AstronomyResponse is the /astronomy.json payload.
type AstronomyResponse struct {
	Location  Location `json:"location"`
	Astronomy struct {
		Astro Astro `json:"astro"`
	} `json:"astronomy"`
}

// ErrorResponse is the error envelope the API returns on non-200.
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
