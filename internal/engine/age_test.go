package engine

import (
	"strconv"
	"testing"
	"time"

	"questbook/internal/storage"
)

func TestAccountAge_StartsAtOne(t *testing.T) {
	svc, _ := newTestService(t)

	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 1 {
		t.Errorf("expected first age 1, got %d", age)
	}
}

func TestAccountAge_AdvancesWithCalendarDays(t *testing.T) {
	svc, clock := newTestService(t)

	if _, err := svc.AccountAge(testToken); err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}

	prev := 0
	for day := 0; day < 5; day++ {
		age, err := svc.AccountAge(testToken)
		if err != nil {
			t.Fatalf("AccountAge failed on day %d: %v", day, err)
		}
		if age != day+1 {
			t.Errorf("expected age %d, got %d", day+1, age)
		}
		if age < prev {
			t.Errorf("age went backwards: %d after %d", age, prev)
		}
		prev = age
		clock.Advance(24 * time.Hour)
	}
}

func TestAccountAge_SameDayRepeatsValue(t *testing.T) {
	svc, clock := newTestService(t)

	setAge(t, svc, 3)
	clock.Advance(6 * time.Hour)

	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 3 {
		t.Errorf("expected age 3 later the same day, got %d", age)
	}
}

func TestAccountAge_FutureCreationDateResets(t *testing.T) {
	svc, clock := newTestService(t)

	future := clock.Now().Add(72 * time.Hour).UnixMilli()
	if err := svc.store.Set(storage.CreationDateKey(testToken), strconv.FormatInt(future, 10)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 1 {
		t.Errorf("expected future date to reset age to 1, got %d", age)
	}

	clock.Advance(24 * time.Hour)
	age, err = svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 2 {
		t.Errorf("expected age 2 the day after reset, got %d", age)
	}
}

func TestAccountAge_MalformedTimestampResets(t *testing.T) {
	svc, _ := newTestService(t)

	if err := svc.store.Set(storage.CreationDateKey(testToken), "yesterday"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 1 {
		t.Errorf("expected malformed date to reset age to 1, got %d", age)
	}
}

func TestAccountAge_NoToken(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.AccountAge(""); err != ErrNoUser {
		t.Errorf("expected ErrNoUser, got %v", err)
	}
}

func TestAdjustCreationDay_RaisesAndLowersAge(t *testing.T) {
	svc, _ := newTestService(t)

	setAge(t, svc, 5)

	if err := svc.AdjustCreationDay(testToken, -2); err != nil {
		t.Fatalf("AdjustCreationDay failed: %v", err)
	}
	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 3 {
		t.Errorf("expected age 3 after lowering, got %d", age)
	}
}

func TestAdjustCreationDay_ClampsAtDayOne(t *testing.T) {
	svc, _ := newTestService(t)

	setAge(t, svc, 2)

	if err := svc.AdjustCreationDay(testToken, -10); err != nil {
		t.Fatalf("AdjustCreationDay failed: %v", err)
	}
	age, err := svc.AccountAge(testToken)
	if err != nil {
		t.Fatalf("AccountAge failed: %v", err)
	}
	if age != 1 {
		t.Errorf("expected age clamped to 1, got %d", age)
	}
}
