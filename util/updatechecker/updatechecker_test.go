package updatechecker

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckForUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.2.0-beta"}`))
	}))
	defer srv.Close()

	status, remote, err := CheckForUpdate(srv.URL, Version{1, 1, 5})
	if err != nil {
		t.Fatal(err)
	}
	if status != StatusMinorUpdate {
		t.Fatalf("expected minor update, got %v", status)
	}
	if remote != (Version{1, 2, 0}) {
		t.Fatalf("unexpected remote version %v", remote)
	}
}

func TestCompare(t *testing.T) {
	cur := Version{1, 0, 0}
	if Compare(cur, Version{1, 0, 0}) != StatusUpToDate {
		t.Error("same version should be up to date")
	}
	if Compare(cur, Version{0, 9, 9}) != StatusUpToDate {
		t.Error("older version should be up to date")
	}
	if Compare(cur, Version{1, 0, 1}) != StatusPatchUpdate {
		t.Error("expected patch update")
	}
	if Compare(cur, Version{2, 0, 0}) != StatusMajorUpdate {
		t.Error("expected major update")
	}
	if _, err := ParseVersion("1.x.0"); err == nil {
		t.Error("expected parse error")
	}
}
