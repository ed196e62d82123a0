package worldclock

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var citiesYAML []byte

// Reading is the local time in a city. When Success is false only Error is set.
type Reading struct {
	Success  bool   `json:"success"`
	City     string `json:"city,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Time12h  string `json:"time_12h,omitempty"`
	Time24h  string `json:"time_24h,omitempty"`
	Date     string `json:"date,omitempty"`
	Full     string `json:"full,omitempty"`
	Error    string `json:"error,omitempty"`
}

type entry struct {
	city string
	zone string
}

// Clock resolves city names to time zones. The table is read-only after New.
type Clock struct {
	byName  map[string]string
	ordered []entry // deterministic order for partial matches
	now     func() time.Time
}

// New parses the embedded city table.
func New() (*Clock, error) {
	var regions map[string]map[string]string
	if err := yaml.Unmarshal(citiesYAML, &regions); err != nil {
		return nil, fmt.Errorf("worldclock: parse city table: %w", err)
	}

	c := &Clock{byName: make(map[string]string), now: time.Now}
	for _, cities := range regions {
		for city, zone := range cities {
			if _, err := time.LoadLocation(zone); err != nil {
				return nil, fmt.Errorf("worldclock: %s: %w", city, err)
			}
			key := strings.ToLower(city)
			c.byName[key] = zone
			c.ordered = append(c.ordered, entry{city: key, zone: zone})
		}
	}
	// Longer names first so "new york" wins over "york"-like fragments.
	sort.Slice(c.ordered, func(i, j int) bool {
		if len(c.ordered[i].city) != len(c.ordered[j].city) {
			return len(c.ordered[i].city) > len(c.ordered[j].city)
		}
		return c.ordered[i].city < c.ordered[j].city
	})
	return c, nil
}

// SetNow overrides the clock source for tests.
func (c *Clock) SetNow(now func() time.Time) {
	c.now = now
}

// Cities returns the number of known city names.
func (c *Clock) Cities() int {
	return len(c.byName)
}

// Resolve maps a city name or IANA zone to a zone name.
func (c *Clock) Resolve(city string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return "", false
	}
	if zone, ok := c.byName[key]; ok {
		return zone, true
	}
	// IANA names are tried before partial matching, otherwise "America/La_Paz" would
	// resolve through the "la" alias.
	name := strings.TrimSpace(city)
	if strings.Contains(name, "/") || strings.EqualFold(name, "UTC") {
		if _, err := time.LoadLocation(name); err == nil {
			return name, true
		}
	}
	// Partial matches respect word boundaries, so "dallas" does not hit the "la" alias.
	norm := strings.Join(strings.Fields(key), " ")
	for _, e := range c.ordered {
		if strings.Contains(" "+norm+" ", " "+e.city+" ") {
			return e.zone, true
		}
		if len(norm) >= minPartialLen && strings.Contains(" "+e.city, " "+norm) {
			return e.zone, true
		}
	}
	return "", false
}

const minPartialLen = 3

// GetTime returns the current time in city.
func (c *Clock) GetTime(city string) Reading {
	zone, ok := c.Resolve(city)
	if !ok {
		return Reading{Error: fmt.Sprintf("Unknown city/timezone: '%s'. Try major cities like Tokyo, London, New York.", city)}
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Reading{Error: fmt.Sprintf("Unknown city/timezone: '%s'. Try major cities like Tokyo, London, New York.", city)}
	}

	now := c.now().In(loc)
	return Reading{
		Success:  true,
		City:     titleCase(strings.TrimSpace(city)),
		Timezone: zone,
		Time12h:  now.Format("03:04 PM"),
		Time24h:  now.Format("15:04"),
		Date:     now.Format("Monday, January 02, 2006"),
		Full:     now.Format("2006-01-02 15:04:05 MST"),
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
