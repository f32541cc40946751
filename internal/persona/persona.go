// Package persona produces sample personal facts for trying the wordlist
// generator without typing real data.
package persona

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/zarlcorp/zguess/internal/wordlist"
)

// age range for generated birthdates
const (
	minAge = 18
	maxAge = 70
)

// Generator produces random sample facts using crypto/rand.
type Generator struct {
	now func() time.Time
}

// New creates a generator.
func New() *Generator {
	return &Generator{now: time.Now}
}

// Facts returns a sample fact set with a full name, birthdate, pet and
// team.
func (g *Generator) Facts() wordlist.Facts {
	f := wordlist.NewFacts()
	f.Add(wordlist.CategoryName, g.Name())
	f.Add(wordlist.CategoryBirthdate, g.Birthdate().Format("2006-01-02"))
	f.Add(wordlist.CategoryPet, pick(petNames))
	f.Add(wordlist.CategoryTeam, pick(teams))
	return f
}

// Name generates a random "First Last" name.
func (g *Generator) Name() string {
	return pick(firstNames) + " " + pick(lastNames)
}

// Birthdate generates a date between minAge and maxAge years ago.
func (g *Generator) Birthdate() time.Time {
	age := minAge + randIntn(maxAge-minAge+1)
	// subtract years, then randomize day within that year
	base := g.now().AddDate(-age, 0, 0)
	return base.AddDate(0, 0, -randIntn(365)).Truncate(24 * time.Hour)
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
