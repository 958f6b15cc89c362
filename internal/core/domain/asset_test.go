package domain_test

import (
	"testing"

	"go.trai.ch/webassets/internal/core/domain"
)

func TestValidHash(t *testing.T) {
	valid := []string{"cafe", "CAFE", "0123456789abcdefABCDEF", "0"}
	for _, s := range valid {
		if !domain.ValidHash(s) {
			t.Errorf("expected %q to be a valid hash", s)
		}
	}

	invalid := []string{"", "xyz", "ca fe", "../cafe", "cafe/", "café"}
	for _, s := range invalid {
		if domain.ValidHash(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestHiddenPath(t *testing.T) {
	hidden := []string{"_private.css", "_dir/file.css", "css/_draft.css", "a/b/_c/d.css"}
	for _, p := range hidden {
		if !domain.HiddenPath(p) {
			t.Errorf("expected %q to be hidden", p)
		}
	}

	visible := []string{"style.css", "css/style.css", "under_score.css", "a/b_c/d.css"}
	for _, p := range visible {
		if domain.HiddenPath(p) {
			t.Errorf("expected %q to be visible", p)
		}
	}
}

func TestBundleName_OrderIndependent(t *testing.T) {
	forward := domain.BundleName([]string{"a.css", "b.css"})
	reversed := domain.BundleName([]string{"b.css", "a.css"})
	if forward != reversed {
		t.Errorf("bundle name depends on order: %q vs %q", forward, reversed)
	}

	other := domain.BundleName([]string{"a.css", "c.css"})
	if forward == other {
		t.Error("distinct path sets produced the same bundle name")
	}
}

func TestBundleRef_RoundTrip(t *testing.T) {
	name := domain.BundleName([]string{"a.css"})
	ref := domain.BundleRef(name)

	parsed, ok := domain.ParseBundleRef(ref)
	if !ok {
		t.Fatalf("expected %q to parse as bundle ref", ref)
	}
	if parsed != name {
		t.Errorf("expected name %q, got %q", name, parsed)
	}
}

func TestParseBundleRef_Plain(t *testing.T) {
	for _, segment := range []string{"style.css", "__bundle_abc", "bundle_abc__", ""} {
		if _, ok := domain.ParseBundleRef(segment); ok {
			t.Errorf("expected %q not to parse as bundle ref", segment)
		}
	}
}

func TestParseFreezeMode(t *testing.T) {
	for _, v := range []string{"", "false", "no", "off", "0"} {
		if domain.ParseFreezeMode(v).Enabled() {
			t.Errorf("expected %q to disable freezing", v)
		}
	}
	for _, v := range []string{"true", "yes", "on", "1"} {
		mode := domain.ParseFreezeMode(v)
		if !mode.Enabled() {
			t.Errorf("expected %q to enable freezing", v)
		}
		if _, ok := mode.Literal(); ok {
			t.Errorf("expected %q not to set a literal", v)
		}
	}

	mode := domain.ParseFreezeMode("deadbeef")
	if !mode.Enabled() {
		t.Error("a literal implies freezing")
	}
	if literal, ok := mode.Literal(); !ok || literal != "deadbeef" {
		t.Errorf("expected literal %q, got %q (%v)", "deadbeef", literal, ok)
	}
}

func TestRequest_Header(t *testing.T) {
	req := domain.Request{Headers: map[string]string{"If-None-Match": "cafe"}}

	if v, ok := req.Header("If-None-Match"); !ok || v != "cafe" {
		t.Errorf("exact lookup failed: %q (%v)", v, ok)
	}
	if v, ok := req.Header("if-none-match"); !ok || v != "cafe" {
		t.Errorf("case-insensitive lookup failed: %q (%v)", v, ok)
	}
	if _, ok := req.Header("If-Modified-Since"); ok {
		t.Error("lookup of absent header succeeded")
	}
}

func TestRequest_Version(t *testing.T) {
	req := domain.Request{Query: map[string]string{"_v": "cafe"}}
	if v, ok := req.Version(); !ok || v != "cafe" {
		t.Errorf("expected version %q, got %q (%v)", "cafe", v, ok)
	}

	if _, ok := (domain.Request{Query: map[string]string{}}).Version(); ok {
		t.Error("expected no version")
	}
}
