package hashutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"go.trai.ch/webassets/internal/adapters/hashutil"
	"go.trai.ch/webassets/internal/core/domain"
	"go.trai.ch/webassets/internal/core/ports"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{16}$`)

func TestContent_IsHexToken(t *testing.T) {
	token := hashutil.Content([]byte("body { color: red }"))
	if !hexToken.MatchString(token) {
		t.Fatalf("expected 16 hex chars, got %q", token)
	}
}

func TestContent_DiffersPerInput(t *testing.T) {
	a := hashutil.Content([]byte("a"))
	b := hashutil.Content([]byte("b"))
	if a == b {
		t.Fatalf("distinct content produced identical token %q", a)
	}
}

func TestFile_MatchesContent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "style.css")
	content := []byte("h1 { font-size: 2em }")
	if err := os.WriteFile(file, content, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	fromFile, err := hashutil.File(file)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if fromFile != hashutil.Content(content) {
		t.Errorf("file token %q does not match content token", fromFile)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := hashutil.File(filepath.Join(t.TempDir(), "nope.css"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestBundle_OrderIndependent(t *testing.T) {
	perPath := func(path string) (string, error) {
		return hashutil.Content([]byte(path)), nil
	}

	forward, err := hashutil.Bundle([]string{"a.css", "b.css", "c.css"}, perPath)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	reversed, err := hashutil.Bundle([]string{"c.css", "b.css", "a.css"}, perPath)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}

	if forward != reversed {
		t.Errorf("bundle token depends on path order: %q vs %q", forward, reversed)
	}
}

func TestBundle_EmptyPaths(t *testing.T) {
	_, err := hashutil.Bundle(nil, func(string) (string, error) { return "", nil })
	if !errors.Is(err, domain.ErrNoPathsProvided) {
		t.Fatalf("expected ErrNoPathsProvided, got %v", err)
	}
}

func TestBundle_EmptyFragmentStillSeparates(t *testing.T) {
	// A path contributing no fragment must still influence the token, so
	// {a} and {a, b-with-empty-hash} stay distinguishable.
	one, err := hashutil.Bundle([]string{"a.css"}, func(string) (string, error) {
		return "ff", nil
	})
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}
	two, err := hashutil.Bundle([]string{"a.css", "b.css"}, func(path string) (string, error) {
		if path == "a.css" {
			return "ff", nil
		}
		return "", nil
	})
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}

	if one == two {
		t.Error("empty fragment was absorbed into the neighbouring path")
	}
}

func TestBundle_PerPathError(t *testing.T) {
	boom := errors.New("boom")
	_, err := hashutil.Bundle([]string{"a.css"}, func(string) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected per-path error to propagate, got %v", err)
	}
}

func TestCombine_SingleFragmentPassthrough(t *testing.T) {
	if got := hashutil.Combine([]string{"deadbeef"}); got != "deadbeef" {
		t.Errorf("expected verbatim passthrough, got %q", got)
	}
	if got := hashutil.Combine([]string{"", "deadbeef", ""}); got != "deadbeef" {
		t.Errorf("expected empty fragments to be skipped, got %q", got)
	}
}

func TestCombine_NoUsableFragments(t *testing.T) {
	if got := hashutil.Combine(nil); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
	if got := hashutil.Combine([]string{"", ""}); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}
}

func TestCombine_MultipleFragments(t *testing.T) {
	combined := hashutil.Combine([]string{"aa", "bb"})
	if !hexToken.MatchString(combined) {
		t.Fatalf("expected combined hex token, got %q", combined)
	}
	if combined == hashutil.Combine([]string{"bb", "aa"}) {
		t.Error("fragment order must matter when combining")
	}
}

func TestResolve(t *testing.T) {
	token, err := hashutil.Resolve([]ports.HashInput{
		func() (string, error) { return "cafe", nil },
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if token != "cafe" {
		t.Errorf("expected %q, got %q", "cafe", token)
	}

	boom := errors.New("boom")
	_, err = hashutil.Resolve([]ports.HashInput{
		func() (string, error) { return "", boom },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected input error to propagate, got %v", err)
	}
}
