package schedule

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"google.golang.org/api/calendar/v3"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return &Store{Dir: t.TempDir()}
}

func TestStoreRoundTrip(t *testing.T) {
	store := testStore(t)
	events := []*calendar.Event{
		timedEvent("first", "2019-03-08T09:00:00Z", "2019-03-08T10:00:00Z"),
		timedEvent("second", "2019-03-08T13:00:00Z", "2019-03-08T14:30:00Z"),
		{
			Summary: "holiday",
			Start:   &calendar.EventDateTime{Date: "2019-03-08"},
			End:     &calendar.EventDateTime{Date: "2019-03-09"},
		},
	}

	if err := store.Save("workday", events); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := store.Load("workday")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !reflect.DeepEqual(loaded, events) {
		t.Errorf("round trip changed events:\ngot  %+v\nwant %+v", loaded, events)
	}
}

func TestStoreSaveSanitizes(t *testing.T) {
	store := testStore(t)
	if err := store.Save("workday", []*calendar.Event{backendEvent()}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := store.Load("workday")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded[0].Id != "" || loaded[0].Etag != "" || loaded[0].ICalUID != "" ||
		loaded[0].RecurringEventId != "" || loaded[0].OriginalStartTime != nil {
		t.Errorf("identity fields survived persistence: %+v", loaded[0])
	}
	if loaded[0].Summary != "Standup" {
		t.Errorf("Summary = %q, want Standup", loaded[0].Summary)
	}
}

func TestStorePathSuffix(t *testing.T) {
	store := &Store{Dir: "schedules"}
	if got := store.Path("workday"); got != filepath.Join("schedules", "workday.json") {
		t.Errorf("Path(workday) = %q", got)
	}
	if got := store.Path("workday.json"); got != filepath.Join("schedules", "workday.json") {
		t.Errorf("Path(workday.json) = %q", got)
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	store := testStore(t)
	if _, err := store.Load("missing"); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("error = %v, want ErrScheduleNotFound", err)
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	store := testStore(t)
	if err := os.WriteFile(filepath.Join(store.Dir, "broken.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load("broken"); !errors.Is(err, ErrMalformedSchedule) {
		t.Errorf("error = %v, want ErrMalformedSchedule", err)
	}
}

func TestStoreSaveLeavesNoTempFile(t *testing.T) {
	store := testStore(t)
	if err := store.Save("workday", []*calendar.Event{backendEvent()}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	entries, err := os.ReadDir(store.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "workday.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestStoreListAndRemove(t *testing.T) {
	store := testStore(t)
	for _, name := range []string{"zeta", "alpha"} {
		if err := store.Save(name, []*calendar.Event{backendEvent()}); err != nil {
			t.Fatalf("Save(%s) returned error: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(store.Dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "zeta"}) {
		t.Errorf("List = %v, want [alpha zeta]", names)
	}

	if err := store.Remove("alpha"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if err := store.Remove("alpha"); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("second Remove error = %v, want ErrScheduleNotFound", err)
	}
}
