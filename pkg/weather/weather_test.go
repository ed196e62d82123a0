package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"personal-assistant/pkg/weather"
)

const tokyoPayload = `{
  "current_condition": [{
    "temp_C": "18", "temp_F": "64", "FeelsLikeC": "17", "humidity": "72",
    "weatherDesc": [{"value": "Partly cloudy"}], "windspeedKmph": "11"
  }],
  "nearest_area": [{"areaName": [{"value": "Tokyo"}], "country": [{"value": "Japan"}]}]
}`

func TestGetWeather(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.URL.Query().Get("format") != "j1" {
			t.Errorf("expected format=j1")
		}
		switch r.URL.Path {
		case "/tokyo":
			w.Write([]byte(tokyoPayload))
		case "/new+york":
			w.Write([]byte(`{"current_condition": [{"temp_C": "5"}], "nearest_area": []}`))
		case "/atlantis":
			w.WriteHeader(http.StatusNotFound)
		case "/garbage":
			w.Write([]byte(`Unknown location`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer ts.Close()

	c := weather.New(ts.URL, 0)
	ctx := context.Background()

	t.Run("full reading", func(t *testing.T) {
		r, err := c.GetWeather(ctx, "tokyo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := weather.Reading{
			Success: true, City: "Tokyo", Country: "Japan", TempC: "18", TempF: "64",
			FeelsLikeC: "17", Humidity: "72", Description: "Partly cloudy", WindKmph: "11",
		}
		if r != want {
			t.Errorf("got %+v, want %+v", r, want)
		}
	})

	t.Run("sparse reading uses defaults", func(t *testing.T) {
		r, err := c.GetWeather(ctx, "new york")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/new+york" {
			t.Errorf("spaces should become +, got path %s", gotPath)
		}
		if r.City != "new york" || r.TempF != "N/A" || r.Description != "Unknown" {
			t.Errorf("unexpected defaults: %+v", r)
		}
	})

	t.Run("not found", func(t *testing.T) {
		for _, city := range []string{"atlantis", "nowhere"} {
			r, err := c.GetWeather(ctx, city)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Success || r.Error != "Weather data not found for '"+city+"'" {
				t.Errorf("unexpected reading: %+v", r)
			}
		}
	})

	t.Run("non JSON body", func(t *testing.T) {
		if _, err := c.GetWeather(ctx, "garbage"); err == nil {
			t.Error("expected decode error")
		}
	})
}
