package storage

import (
	"testing"
)

func openTestGData(t *testing.T) *GDataStore {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	store, err := OpenGData("delhi_dash_test", nil)
	if err != nil {
		t.Fatalf("OpenGData() failed: %v", err)
	}
	return store
}

func TestGDataStoreRoundTrip(t *testing.T) {
	store := openTestGData(t)

	v, err := store.Load("delhiDashHighScore")
	if err != nil || v != 0 {
		t.Errorf("Load() on empty store = %d, %v, expected 0, nil", v, err)
	}

	if err := store.Save("delhiDashHighScore", 500); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	v, err = store.Load("delhiDashHighScore")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if v != 500 {
		t.Errorf("Load() = %d, expected 500", v)
	}
}

func TestGDataStoreHighScoreInterface(t *testing.T) {
	store := openTestGData(t)

	if got := store.Get("k"); got != 0 {
		t.Errorf("Get() on missing key = %d, expected 0", got)
	}
	store.Set("k", 300)
	store.Set("k", 200)
	if got := store.Get("k"); got != 200 {
		t.Errorf("Get() = %d, expected last written 200", got)
	}
}
