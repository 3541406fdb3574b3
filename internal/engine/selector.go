package engine

import (
	"fmt"
	"strconv"

	"questbook/internal/models"
	"questbook/internal/storage"
)

// FallbackReason marks a DailyContent result that could not be fully
// resolved. The UI renders these as explanatory states, never as errors.
type FallbackReason int

const (
	FallbackNone FallbackReason = iota
	FallbackNoClassKey
	FallbackNoChallenge
	FallbackBadContent
)

// DailyContent is everything the home view needs for one day.
type DailyContent struct {
	WeeklyTrial models.WeeklyTrial
	Tasks       []models.DailyTask
	Challenge   *models.Challenge
	AccountAge  int
	Fallback    FallbackReason
}

// SelectDailyContent resolves the active weekly trial and the day's two
// tasks for the user. A saved snapshot for the current day is reused as-is;
// otherwise content is derived from the challenge line, carrying over task
// status from any earlier snapshot of the same day.
func (s *Service) SelectDailyContent(token string) (DailyContent, error) {
	if token == "" {
		return DailyContent{}, ErrNoUser
	}

	age, err := s.AccountAge(token)
	if err != nil {
		return DailyContent{}, err
	}

	classKey := s.ClassKey(token)
	if classKey == "" {
		return DailyContent{
			AccountAge: age,
			Fallback:   FallbackNoClassKey,
			WeeklyTrial: models.WeeklyTrial{
				Title:       "No hero class",
				Description: "Complete the onboarding questions to receive your quest line.",
			},
		}, nil
	}

	path, intensity, parseErr := parseClassKey(classKey)
	if parseErr != nil {
		s.log.Warn("unparseable class key", "key", classKey, "err", parseErr)
		return DailyContent{
			AccountAge: age,
			Fallback:   FallbackBadContent,
			WeeklyTrial: models.WeeklyTrial{
				Title:       "Error loading challenge",
				Description: "Your classification could not be read.",
			},
		}, nil
	}

	prefix := fmt.Sprintf("%s-%d", path, intensity)
	matches := s.library.MatchingChallenges(prefix)
	if len(matches) == 0 {
		s.log.Warn("no challenges match classification", "prefix", prefix)
		return DailyContent{
			AccountAge: age,
			Fallback:   FallbackNoChallenge,
			WeeklyTrial: models.WeeklyTrial{
				Title:              "No challenge",
				Description:        "No challenge matches your profile.",
				WeeklyTrialSummary: "Try a different profile?",
			},
		}, nil
	}

	challenge := s.pinnedChallenge(token, matches)

	weekNum := (age-1)/7 + 1
	dayInWeek := (age-1)%7 + 1

	if len(challenge.Weeks) == 0 {
		return s.badContent(age, "challenge has no weeks"), nil
	}
	weekIdx := weekNum - 1
	if weekIdx >= len(challenge.Weeks) {
		weekIdx = len(challenge.Weeks) - 1
	}
	week := challenge.Weeks[weekIdx]

	if len(week.Days) == 0 {
		return s.badContent(age, "week has no days"), nil
	}
	dayIdx := dayInWeek - 1
	if dayIdx >= len(week.Days) {
		dayIdx = len(week.Days) - 1
	}
	day := week.Days[dayIdx]

	trial := models.WeeklyTrial{
		Title:              challenge.Title,
		Description:        challenge.Description,
		WeeklyTrialSummary: week.WeeklyTrial,
	}

	taskIDs := day.Tasks
	if len(taskIDs) > 2 {
		taskIDs = taskIDs[:2]
	}

	tasks := make([]models.DailyTask, 0, len(taskIDs))
	for slot, id := range taskIDs {
		key := models.SlotKey{ChallengeID: challenge.ID, Week: weekIdx + 1, Day: dayIdx + 1, Slot: slot}
		tasks = append(tasks, s.resolveDailyTask(id, key, intensity))
	}

	// Carry status over from an earlier snapshot of the same day: slot key
	// first, exact text as fallback for pre-slot-key snapshots.
	if saved := s.DailyTasksState(token); saved != nil && saved.AccountAge == age {
		for i := range tasks {
			for _, old := range saved.Tasks {
				if !old.Key.IsZero() && old.Key == tasks[i].Key {
					tasks[i].Status = old.Status
					break
				}
				if old.Key.IsZero() && old.Text == tasks[i].Text {
					tasks[i].Status = old.Status
					break
				}
			}
		}
	}

	s.saveDailyTasksState(token, models.DailyTasksState{Tasks: tasks, AccountAge: age})
	s.setJSON(storage.WeeklyTrialKey(token), trial)

	return DailyContent{
		WeeklyTrial: trial,
		Tasks:       tasks,
		Challenge:   &challenge,
		AccountAge:  age,
	}, nil
}

func (s *Service) badContent(age int, reason string) DailyContent {
	s.log.Warn("challenge content inconsistent", "reason", reason)
	return DailyContent{
		AccountAge: age,
		Fallback:   FallbackBadContent,
		WeeklyTrial: models.WeeklyTrial{
			Title:              "Error loading challenge",
			Description:        "There was a problem loading the weekly challenge.",
			WeeklyTrialSummary: "Please try refreshing.",
		},
	}
}

// pinnedChallenge returns the user's pinned challenge when it still matches
// the classification; otherwise one is picked at random and the pin
// persisted so restarts keep the same quest line.
func (s *Service) pinnedChallenge(token string, matches []models.Challenge) models.Challenge {
	if raw, err := s.store.Get(storage.PinnedChallengeKey(token)); err == nil {
		for _, c := range matches {
			if c.ID == raw {
				return c
			}
		}
	}

	chosen := matches[s.rng.Intn(len(matches))]
	if err := s.store.Set(storage.PinnedChallengeKey(token), chosen.ID); err != nil {
		s.log.Error("failed to persist challenge pin", "err", err)
	}
	return chosen
}

func (s *Service) resolveDailyTask(taskID string, key models.SlotKey, intensity int) models.DailyTask {
	info, ok := s.library.Task(taskID)
	if !ok {
		s.log.Warn("task id missing from library", "id", taskID)
		return models.DailyTask{
			Key:      key,
			Text:     fmt.Sprintf("Unknown task: %s", taskID),
			Status:   models.TaskStatusDefault,
			Category: "general",
		}
	}

	duration := info.Duration
	if duration == "" {
		if v, ok := info.Intensities[strconv.Itoa(intensity)]; ok {
			duration = v.Duration
		}
	}
	if duration == "" {
		duration = "30"
	}

	return models.DailyTask{
		Key:      key,
		Text:     fmt.Sprintf("%s (%s min)", info.Task, duration),
		Status:   models.TaskStatusDefault,
		Category: NormalizeCategory(info.Category),
	}
}
