package cache

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"routelint/internal/analysis"
	"routelint/internal/diag"
	"routelint/internal/source"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	hash := sha256.Sum256([]byte("const a = new QueryClient();"))
	entry := &analysis.CachedFile{
		Path:     "src/routes.ts",
		Extended: true,
		Issues: []diag.Issue{{
			Kind:     diag.KindAdHocQueryClient,
			Severity: diag.SevMedium,
			File:     "src/routes.ts",
			Span:     source.NewSpan(0, 10, 26),
			Message:  "QueryClient is constructed in this module",
			Count:    1,
			Fix:      "share-query-client",
		}},
		Recommendations: []diag.Recommendation{{
			File:     "src/routes.ts",
			Priority: diag.SevMedium,
			Message:  "hoist the QueryClient construction",
		}},
		Config: &analysis.RouteFileConfig{File: "src/routes.ts", MultipleQueryClients: false},
	}
	if err := c.Put(hash, entry); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := c.Get(hash)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if !reflect.DeepEqual(got, entry) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, entry)
	}
}

func TestMissingEntryIsMiss(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(sha256.Sum256([]byte("nothing"))); ok {
		t.Error("expected a miss for an unknown hash")
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("x"))
	if err := os.WriteFile(c.pathFor(hash), []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Get(hash); ok {
		t.Error("corrupt entries must read as misses")
	}
}

func TestNoStrayTempFiles(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	hash := sha256.Sum256([]byte("y"))
	if err := c.Put(hash, &analysis.CachedFile{Path: "a.ts"}); err != nil {
		t.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "tmp-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}
