package strength

import (
	"regexp"
	"strings"
)

// weakPattern flags shapes that guessing tools try first, whatever their
// apparent entropy.
type weakPattern struct {
	re      *regexp.Regexp
	message string
}

// checked in order, first match wins; matched against the lowercased input
var weakPatterns = []weakPattern{
	{regexp.MustCompile(`^[a-z]+@123!*$`), "word followed by @123 is one of the first patterns tried"},
	{regexp.MustCompile(`^[a-z]+123!*$`), "word followed by 123 is easily guessed"},
	{regexp.MustCompile(`^(password|admin|welcome|login)`), "starts with a dictionary word that is trivial to crack"},
	{regexp.MustCompile(`^(qwerty|asdf|zxcv)`), "starts with a keyboard sequence"},
	{regexp.MustCompile(`^[0-9]{6,10}$`), "digits only, easily cracked"},
}

// matchWeakPattern returns the message of the first pattern password
// matches.
func matchWeakPattern(password string) (string, bool) {
	lower := strings.ToLower(password)
	for _, p := range weakPatterns {
		if p.re.MatchString(lower) {
			return p.message, true
		}
	}
	return "", false
}

func patternResult(message string) Result {
	return Result{
		Score:     VeryWeak,
		CrackTime: "minutes",
		Feedback:  []string{message},
		Method:    MethodPattern,
	}
}
