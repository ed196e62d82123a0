package router

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Extractors never fail: each returns its documented default when nothing usable is found.

// ExtractTicker returns the first known ticker in text, else the first 1-5 letter word
// that is not a filler word, else DefaultTicker.
func ExtractTicker(text string) string {
	var candidates []string
	for _, word := range strings.Fields(strings.ToUpper(text)) {
		clean := strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) {
				return r
			}
			return -1
		}, word)
		if clean == "" {
			continue
		}
		if knownTickers[clean] {
			return clean
		}
		candidates = append(candidates, clean)
	}

	for _, c := range candidates {
		if n := utf8.RuneCountInString(c); n >= 1 && n <= 5 && isASCIIAlpha(c) && !tickerStopWords[c] {
			return c
		}
	}
	return DefaultTicker
}

// ExtractCryptoSymbol maps the first synonym set present in text to its symbol.
func ExtractCryptoSymbol(text string) string {
	lower := strings.ToLower(text)
	toks := tokenSet(lower)
	for _, syn := range cryptoSynonyms {
		if containsAny(lower, syn.names) || hasAnyToken(toks, syn.tokens) {
			return syn.symbol
		}
	}
	return DefaultCrypto
}

// ExtractCity returns the lower-cased text following the first phrase (in list order)
// found in text, without surrounding space or trailing punctuation.
func ExtractCity(text string, phrases []string) string {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		idx := strings.Index(lower, phrase)
		if idx < 0 {
			continue
		}
		city := strings.TrimSpace(lower[idx+len(phrase):])
		city = strings.TrimSpace(strings.TrimRight(city, cityTrailing))
		if city == "" {
			break
		}
		return city
	}
	return DefaultCity
}

// ExtractRecipient returns the first whitespace separated token containing "@", or "".
func ExtractRecipient(text string) string {
	for _, word := range strings.Fields(text) {
		if strings.Contains(word, "@") {
			return strings.TrimRight(word, ".,;:!?")
		}
	}
	return ""
}

const cityTrailing = "?!.,;:"

var (
	emailTail       = regexp.MustCompile(`(?s)[\w.+-]+@[\w-]+(?:\.[\w-]+)*(.*)$`)
	leadConnector   = regexp.MustCompile(`(?i)^(saying|with|message|body|content|that)\b[\s:]*`)
	leadPunctuation = " \t\r\n:,-"

	// bodyConnectorRes match bodyConnectors case-insensitively on the original text, in
	// list order, so the body keeps its casing.
	bodyConnectorRes = compileConnectors(bodyConnectors)
)

func compileConnectors(phrases []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(p)))
	}
	return out
}

// ExtractMessageBody pulls the message body out of a send request. It looks for a
// connector phrase first, then for text following an email address. Text with neither is
// already a body and is returned trimmed. ok is false when fewer than three characters
// remain, which callers treat as a request for more detail.
func ExtractMessageBody(text string) (body string, ok bool) {
	found := false
	for _, re := range bodyConnectorRes {
		if loc := re.FindStringIndex(text); loc != nil {
			body = text[loc[1]:]
			found = true
			break
		}
	}

	if !found {
		if m := emailTail.FindStringSubmatch(text); m != nil {
			body = strings.TrimLeft(m[1], leadPunctuation)
			body = leadConnector.ReplaceAllString(body, "")
			found = true
		}
	}

	if !found {
		body = text
	}

	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) < minBodyLen {
		return "", false
	}
	return body, true
}

func isASCIIAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func tokenSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[t] = true
	}
	return set
}

func hasAnyToken(set map[string]bool, tokens []string) bool {
	for _, t := range tokens {
		if set[t] {
			return true
		}
	}
	return false
}
