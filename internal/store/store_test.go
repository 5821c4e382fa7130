package store

import (
	"strings"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	rel := "league/123/mSettings.json"

	if st.Exists(rel) {
		t.Fatal("file should not exist yet")
	}
	if err := st.Write(rel, []byte(`{"settings":{"name":"Hoops"}}`)); err != nil {
		t.Fatal(err)
	}
	if !st.Exists(rel) {
		t.Fatal("file should exist after write")
	}

	b, err := st.Read(rel)
	if err != nil {
		t.Fatal(err)
	}
	// JSON payloads are reindented on write.
	if !strings.Contains(string(b), "\n  ") {
		t.Fatalf("payload not reindented: %q", b)
	}

	var v struct {
		Settings struct {
			Name string `json:"name"`
		} `json:"settings"`
	}
	if err := st.ReadJSON(rel, &v); err != nil {
		t.Fatal(err)
	}
	if v.Settings.Name != "Hoops" {
		t.Fatalf("got %q, want Hoops", v.Settings.Name)
	}
}

func TestWriteNonJSONKeptVerbatim(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Write("note.txt", []byte("not json")); err != nil {
		t.Fatal(err)
	}
	b, err := st.Read("note.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "not json" {
		t.Fatalf("got %q", b)
	}
}

func TestReadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Read("nope.json"); err == nil {
		t.Fatal("expected error")
	}
}
