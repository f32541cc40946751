package strength

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed common_passwords.txt
var commonPasswordsRaw string

// topPasswords get a sharper message than a generic breach hit
var topPasswords = map[string]bool{
	"password": true,
	"admin":    true,
	"welcome":  true,
	"login":    true,
	"user":     true,
	"guest":    true,
	"123456":   true,
	"qwerty":   true,
}

// localWords are themes that localized attack lists lean on.
var localWords = []struct {
	words   []string
	message string
}{
	{
		[]string{"mumbai", "delhi", "bangalore", "chennai", "kolkata", "hyderabad"},
		"city names are prime targets in localized attack lists",
	},
	{
		[]string{"india", "bollywood", "cricket", "diwali", "holi"},
		"cultural references are heavily targeted in localized attacks",
	},
	{
		[]string{"tcs", "infosys", "wipro", "reliance", "airtel"},
		"company names are easily guessed in corporate environments",
	},
}

// LoadBreachList reads one password per line. Blank lines and lines
// starting with # are skipped.
func LoadBreachList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("load breach list: %w", err)
	}
	return out, nil
}

// embeddedBreachList parses the built-in list. It cannot fail on a string
// reader, so errors are ignored.
func embeddedBreachList() []string {
	words, _ := LoadBreachList(strings.NewReader(commonPasswordsRaw))
	return words
}

// breachSet is a case-insensitive set of known passwords.
type breachSet map[string]struct{}

func newBreachSet(lists ...[]string) breachSet {
	s := make(breachSet)
	for _, list := range lists {
		for _, w := range list {
			s[strings.ToLower(w)] = struct{}{}
		}
	}
	return s
}

func (s breachSet) contains(password string) bool {
	_, ok := s[strings.ToLower(password)]
	return ok
}

// breachFeedback explains why a known password is unsafe.
func breachFeedback(password string) string {
	lower := strings.ToLower(password)
	for _, suffix := range []string{"@123", "#123", "$123", "!123", "*123"} {
		if strings.Contains(lower, suffix) {
			return fmt.Sprintf("uses the %q pattern seen across many breach dumps", suffix)
		}
	}
	if topPasswords[lower] {
		return "among the most common passwords in the world"
	}
	for _, group := range localWords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.message
			}
		}
	}
	return "appears in known breach lists"
}

func breachResult(password string) Result {
	return Result{
		Score:     VeryWeak,
		CrackTime: "instant",
		Feedback:  []string{breachFeedback(password)},
		Method:    MethodBreach,
	}
}
