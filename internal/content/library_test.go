package content

import (
	"math/rand"
	"testing"
)

func TestDefault_ParsesEmbeddedContent(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if len(lib.Challenges) == 0 {
		t.Error("expected embedded challenges")
	}
	if len(lib.Tasks) == 0 {
		t.Error("expected embedded task library")
	}
	if len(lib.Quotes) == 0 {
		t.Error("expected embedded quotes")
	}
	if len(lib.Classes) == 0 {
		t.Error("expected embedded hero classes")
	}
}

func TestDefault_ChallengesReferenceKnownTasks(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	for _, c := range lib.Challenges {
		if len(c.Weeks) == 0 {
			t.Errorf("challenge %s has no weeks", c.ID)
		}
		for _, w := range c.Weeks {
			for _, d := range w.Days {
				for _, id := range d.Tasks {
					if _, ok := lib.Task(id); !ok {
						t.Errorf("challenge %s references unknown task %q", c.ID, id)
					}
				}
			}
		}
	}
}

func TestMatchingChallenges_EveryIntensityPrefixCovered(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	for _, prefix := range []string{"1-2", "1-4", "2-2", "2-4", "3-2", "3-4"} {
		if len(lib.MatchingChallenges(prefix)) == 0 {
			t.Errorf("no challenges for prefix %s", prefix)
		}
	}
	if len(lib.MatchingChallenges("9-9")) != 0 {
		t.Error("expected no challenges for unknown prefix")
	}
}

func TestRandomQuote_EmptyListFallsBack(t *testing.T) {
	lib := &Library{}
	rng := rand.New(rand.NewSource(1))

	q := lib.RandomQuote(rng)
	if q.QuoteText == "" || q.Author == "" {
		t.Errorf("expected fallback quote, got %+v", q)
	}
}

func TestClass_KnownKeys(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if _, ok := lib.Class("1-epic-consequence"); !ok {
		t.Error("expected class for 1-epic-consequence")
	}
	if _, ok := lib.Class("nope"); ok {
		t.Error("expected no class for unknown key")
	}
}
