package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"questbook/internal/models"
)

//go:embed assets/*.json
var assets embed.FS

// Library bundles the static read-only content the app ships with: the
// challenge lines, the task library they reference, quotes, and the hero
// class table.
type Library struct {
	Challenges []models.Challenge
	Tasks      map[string]models.LibraryTask
	Quotes     []models.Quote
	Classes    map[string]models.HeroClass
}

type questFile struct {
	ProgressiveChallenges []models.Challenge            `json:"progressiveChallenges"`
	TaskLibrary           map[string]models.LibraryTask `json:"taskLibrary"`
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default loads the embedded content library. The parse happens once per
// process.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = load()
	})
	return defaultLib, defaultErr
}

func load() (*Library, error) {
	var quests questFile
	if err := readJSON("assets/quests.json", &quests); err != nil {
		return nil, err
	}
	if len(quests.ProgressiveChallenges) == 0 || len(quests.TaskLibrary) == 0 {
		return nil, fmt.Errorf("quest content is empty or malformed")
	}

	var quotes []models.Quote
	if err := readJSON("assets/quotes.json", &quotes); err != nil {
		return nil, err
	}

	var classes []models.HeroClass
	if err := readJSON("assets/classes.json", &classes); err != nil {
		return nil, err
	}
	classIndex := make(map[string]models.HeroClass, len(classes))
	for _, c := range classes {
		classIndex[c.Key] = c
	}

	return &Library{
		Challenges: quests.ProgressiveChallenges,
		Tasks:      quests.TaskLibrary,
		Quotes:     quotes,
		Classes:    classIndex,
	}, nil
}

func readJSON(name string, v any) error {
	data, err := assets.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// MatchingChallenges returns the challenges whose id starts with the given
// "{path}-{intensity}" prefix.
func (l *Library) MatchingChallenges(prefix string) []models.Challenge {
	var matches []models.Challenge
	for _, c := range l.Challenges {
		if c.ID != "" && strings.HasPrefix(c.ID, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Challenge looks up a challenge by exact id.
func (l *Library) Challenge(id string) (models.Challenge, bool) {
	for _, c := range l.Challenges {
		if c.ID == id {
			return c, true
		}
	}
	return models.Challenge{}, false
}

// Task looks up a task library entry by id.
func (l *Library) Task(id string) (models.LibraryTask, bool) {
	t, ok := l.Tasks[id]
	return t, ok
}

// RandomQuote picks a quote for the day. Falls back to a fixed quote when
// the list is empty so the UI always has something to show.
func (l *Library) RandomQuote(rng *rand.Rand) models.Quote {
	if len(l.Quotes) == 0 {
		return models.Quote{
			QuoteText: "The unexamined life is not worth living",
			Author:    "Socrates",
			Origin:    "Apology",
		}
	}
	return l.Quotes[rng.Intn(len(l.Quotes))]
}

// Class resolves a classification key to its hero class description.
func (l *Library) Class(key string) (models.HeroClass, bool) {
	c, ok := l.Classes[key]
	return c, ok
}
