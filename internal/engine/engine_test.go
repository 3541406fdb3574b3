package engine

import (
	"io"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"questbook/internal/content"
	"questbook/internal/models"
	"questbook/internal/storage"
)

const testToken = "tok-1234"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	return newTestServiceWith(t, testLibrary())
}

func newTestServiceWith(t *testing.T, library *content.Library) (*Service, *fakeClock) {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "questbook.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := New(store, library,
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(log.New(io.Discard)),
	)
	return svc, clock
}

// setAge moves the account clock so AccountAge reports the given day.
func setAge(t *testing.T, svc *Service, age int) {
	t.Helper()

	if _, err := svc.AccountAge(testToken); err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if err := svc.AdjustCreationDay(testToken, age-1); err != nil {
		t.Fatalf("AdjustCreationDay failed: %v", err)
	}
	got, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if got != age {
		t.Fatalf("expected account age %d, got %d", age, got)
	}
}

func testWeek(n int, trial string, firstDay []string) models.ChallengeWeek {
	days := make([]models.ChallengeDay, 7)
	for i := range days {
		days[i] = models.ChallengeDay{DayNumber: i + 1, Tasks: []string{"reading", "stretching"}}
	}
	days[0].Tasks = firstDay
	return models.ChallengeWeek{WeekNumber: n, WeeklyTrial: trial, Days: days}
}

func testLibrary() *content.Library {
	return &content.Library{
		Challenges: []models.Challenge{
			{
				ID: "1-4-a", Path: "mental", Intensity: 4,
				Title:       "Path of the Quiet Mind",
				Description: "Focus and reflection.",
				Weeks: []models.ChallengeWeek{
					testWeek(1, "Meditate on four days.", []string{"meditation", "reading"}),
					testWeek(2, "Read a chapter daily.", []string{"journaling", "stretching"}),
				},
			},
			{
				ID: "1-4-b", Path: "mental", Intensity: 4,
				Title:       "Path of the Restless Scholar",
				Description: "Learning above all.",
				Weeks: []models.ChallengeWeek{
					testWeek(1, "Read every day.", []string{"reading", "journaling"}),
					testWeek(2, "Teach someone a thing.", []string{"meditation", "stretching"}),
				},
			},
			{
				ID: "2-2-a", Path: "physical", Intensity: 2,
				Title:       "Path of Small Steps",
				Description: "Gentle movement.",
				Weeks: []models.ChallengeWeek{
					testWeek(1, "Walk on three days.", []string{"stretching", "reading"}),
				},
			},
		},
		Tasks: map[string]models.LibraryTask{
			"meditation": {
				Task: "Meditate", Category: "mindfulness",
				Intensities: map[string]models.IntensityVariant{
					"2": {Duration: "10"},
					"4": {Duration: "20"},
				},
			},
			"journaling": {
				Task: "Write in your journal", Category: "mindfulness",
				Intensities: map[string]models.IntensityVariant{
					"2": {Duration: "5"},
					"4": {Duration: "15"},
				},
			},
			"reading":    {Task: "Read a book", Category: "knowledge", Duration: "25"},
			"stretching": {Task: "Stretch", Category: "physical", Duration: "15"},
		},
		Quotes: []models.Quote{
			{QuoteText: "Well begun is half done", Author: "Aristotle"},
		},
		Classes: map[string]models.HeroClass{
			"1-epic-consequence": {Key: "1-epic-consequence", Name: "Sworn Archsage"},
		},
	}
}

// singleChallengeLibrary narrows the library to one matching quest line so
// selection is independent of the random pin.
func singleChallengeLibrary() *content.Library {
	lib := testLibrary()
	lib.Challenges = lib.Challenges[:1]
	return lib
}
