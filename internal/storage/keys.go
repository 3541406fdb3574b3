package storage

import "fmt"

// Key layout. User-scoped data lives under "{key}_{token}"; a few globals
// predate multi-user support and are migrated into token scope at startup.

const (
	KeyUserToken       = "userToken"
	KeyUserEmail       = "userEmail"
	KeyUserFullName    = "userFullName"
	KeyUserUsername    = "userUsername"
	KeyThemePreference = "themePreference"

	// Legacy global keys, read only by the migration pass.
	legacyClassKey = "userClassKey"
)

// QuestionChoiceKey holds the raw answer to onboarding question n. The class
// key is derived from these; they are kept so onboarding can be replayed.
func QuestionChoiceKey(token string, n int) string {
	return fmt.Sprintf("question%dChoice_%s", n, token)
}

func ClassKey(token string) string {
	return "userClassKey_" + token
}

func CreationDateKey(token string) string {
	return "@account_creation_date_" + token
}

func DailyTasksKey(token string) string {
	return "dailyTasks_" + token
}

func AdditionalTasksKey(token string) string {
	return "additionalTasks_" + token
}

func CompletionRecordsKey(token string) string {
	return "@task_completion_records_" + token
}

func WeeklyTrialKey(token string) string {
	return "weeklyTrial_" + token
}

func PinnedChallengeKey(token string) string {
	return "pinnedChallenge_" + token
}

func ProfileImageKey(token string) string {
	return "profileImage_" + token
}

func MigrationDoneKey(token string) string {
	return "migrationDone_" + token
}
