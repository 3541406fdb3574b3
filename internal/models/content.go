package models

// Static content types. These are read-only inputs shipped with the binary;
// nothing in the app writes them.

type ChallengeDay struct {
	DayNumber int      `json:"dayNumber"`
	Tasks     []string `json:"tasks"` // task library ids
}

type ChallengeWeek struct {
	WeekNumber  int            `json:"weekNumber"`
	WeeklyTrial string         `json:"weeklyTrial"`
	Days        []ChallengeDay `json:"days"`
}

// Challenge is a multi-week quest line. The id prefix "{path}-{intensity}"
// is what the selector matches against a classification key.
type Challenge struct {
	ID          string          `json:"id"`
	Path        string          `json:"path"`
	Intensity   int             `json:"intensity"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Weeks       []ChallengeWeek `json:"weeks"`
}

type IntensityVariant struct {
	Duration string `json:"duration"`
}

// LibraryTask maps a task id to its display name, category and duration.
// Duration is either fixed or chosen per intensity tier.
type LibraryTask struct {
	Task        string                      `json:"task"`
	Category    string                      `json:"category"`
	Duration    string                      `json:"duration,omitempty"`
	Intensities map[string]IntensityVariant `json:"intensities,omitempty"`
}

// WeeklyTrial is the rendered weekly goal shown alongside daily tasks.
type WeeklyTrial struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	WeeklyTrialSummary string `json:"weeklyTrialSummary"`
}

func (w WeeklyTrial) Valid() bool {
	return w.Title != ""
}

type Quote struct {
	QuoteText string `json:"quoteText"`
	Author    string `json:"author"`
	Origin    string `json:"origin,omitempty"`
}

// HeroClass describes the character class derived from a classification key.
type HeroClass struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
