package planning_test

import (
	"reflect"
	"testing"

	"github.com/berlines/route-planner/planning"
)

func TestWeekDates_NormalizesToMonday(t *testing.T) {
	// GIVEN: a Wednesday
	// WHEN: the week is computed
	// THEN: it starts on the preceding Monday with 5 business dates

	dates, err := planning.WeekDates("2025-12-17")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-12-15", "2025-12-16", "2025-12-17", "2025-12-18", "2025-12-19"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}

func TestWeekDates_SundayBelongsToEndingWeek(t *testing.T) {
	dates, err := planning.WeekDates("2025-12-21")
	if err != nil {
		t.Fatal(err)
	}
	if dates[0] != "2025-12-15" {
		t.Errorf("Sunday should resolve to the Monday it follows, got %s", dates[0])
	}
}

func TestWeekDates_MondayIsFixpoint(t *testing.T) {
	dates, err := planning.WeekDates("2025-12-15")
	if err != nil {
		t.Fatal(err)
	}
	if dates[0] != "2025-12-15" {
		t.Errorf("Monday input should stay, got %s", dates[0])
	}
}

func TestWeekDates_InvalidDate(t *testing.T) {
	if _, err := planning.WeekDates("not-a-date"); err == nil {
		t.Error("expected an error for malformed week_start")
	}
}

func TestBusinessDates_SkipsWeekends(t *testing.T) {
	// 2025-12-12 is a Friday, 2025-12-16 a Tuesday.
	dates, err := planning.BusinessDates("2025-12-12", "2025-12-16")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"2025-12-12", "2025-12-15", "2025-12-16"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("expected %v, got %v", want, dates)
	}
}
