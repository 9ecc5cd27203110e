package diag

import "testing"

func TestBagKeepsInsertionOrder(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Issue{Kind: KindDynamicRoutes, Severity: SevHigh, File: "a.tsx"})
	bag.Add(Issue{Kind: KindMissingMemo, Severity: SevLow, File: "a.tsx"})
	bag.Add(Issue{Kind: KindPerfSmell, Severity: SevLow, File: "b.tsx"})

	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(items))
	}
	if items[0].Kind != KindDynamicRoutes || items[2].Kind != KindPerfSmell {
		t.Error("issues reordered")
	}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Issue{Kind: KindPerfSmell}) || !bag.Add(Issue{Kind: KindPerfSmell}) {
		t.Fatal("first two adds should succeed")
	}
	if bag.Add(Issue{Kind: KindPerfSmell}) {
		t.Error("add beyond cap should report false")
	}
	if bag.Len() != 2 {
		t.Errorf("expected len 2, got %d", bag.Len())
	}
}

func TestBagFilesDistinctFirstSeen(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Issue{File: "b.tsx"})
	bag.Add(Issue{File: "a.tsx"})
	bag.Add(Issue{File: "b.tsx"})

	files := bag.Files()
	if len(files) != 2 || files[0] != "b.tsx" || files[1] != "a.tsx" {
		t.Errorf("unexpected files %v", files)
	}
}

func TestKindIDRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.ID())
		if !ok || got != k {
			t.Errorf("kind %v did not round-trip through %q", k, k.ID())
		}
	}
	if _, ok := ParseKind("no-such-rule"); ok {
		t.Error("unknown ID should not parse")
	}
}

func TestSeverityNames(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevHigh, "high"},
		{SevMedium, "medium"},
		{SevLow, "low"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
		parsed, ok := ParseSeverity(tt.want)
		if !ok || parsed != tt.sev {
			t.Errorf("ParseSeverity(%q) = %v, %v", tt.want, parsed, ok)
		}
	}
}
