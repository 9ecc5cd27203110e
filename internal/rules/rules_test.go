package rules

import (
	"reflect"
	"testing"

	"routelint/internal/diag"
	"routelint/internal/source"
)

func runAll(t *testing.T, text string, extended bool) ([]diag.Issue, []diag.Recommendation) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/AppRoutes.tsx", []byte(text))
	bag := diag.NewBag(0)
	var recs []diag.Recommendation
	ctx := NewContext(fs.Get(id), "src/AppRoutes.tsx", extended, diag.BagReporter{Bag: bag, Recs: &recs})
	Run(All(), ctx)
	return bag.Items(), recs
}

func issuesOf(items []diag.Issue, kind diag.Kind) []diag.Issue {
	var out []diag.Issue
	for _, iss := range items {
		if iss.Kind == kind {
			out = append(out, iss)
		}
	}
	return out
}

func TestDynamicRoutesWithRecommendation(t *testing.T) {
	text := `const el = routes.map(({ path, Component }) => <Route path={path} element={<Component />} />);`
	issues, recs := runAll(t, text, false)

	dyn := issuesOf(issues, diag.KindDynamicRoutes)
	if len(dyn) != 1 {
		t.Fatalf("expected 1 dynamic-route issue, got %d", len(dyn))
	}
	if dyn[0].Severity != diag.SevHigh {
		t.Errorf("severity = %v, want high", dyn[0].Severity)
	}
	if dyn[0].Pattern == "" {
		t.Error("expected the matched text as pattern sample")
	}

	found := false
	for _, r := range recs {
		if r.File == "src/AppRoutes.tsx" && r.Priority == diag.SevHigh {
			found = true
		}
	}
	if !found {
		t.Error("expected a memoization recommendation when useMemo is absent")
	}
}

func TestDynamicRoutesRecommendationSuppressedByUseMemo(t *testing.T) {
	text := `const memo = useMemo(() => routes, [routes]);
const el = routes.map(({ path, Component }) => null);`
	issues, recs := runAll(t, text, false)

	if len(issuesOf(issues, diag.KindDynamicRoutes)) != 1 {
		t.Fatal("issue must still be emitted when useMemo is present")
	}
	for _, r := range recs {
		if r.Priority == diag.SevHigh {
			t.Errorf("memoization recommendation should be suppressed, got %+v", r)
		}
	}
}

func TestQueryClientCountsOccurrences(t *testing.T) {
	text := `const a = new QueryClient();
const b = new QueryClient();`
	issues, recs := runAll(t, text, false)

	qc := issuesOf(issues, diag.KindAdHocQueryClient)
	if len(qc) != 1 {
		t.Fatalf("expected exactly 1 query-client issue, got %d", len(qc))
	}
	if qc[0].Count != 2 {
		t.Errorf("count = %d, want 2", qc[0].Count)
	}
	if len(recs) == 0 {
		t.Error("expected the hoisting recommendation to always accompany the issue")
	}
}

func TestContextAboveRouterFirstIndexOnly(t *testing.T) {
	above := `const Ctx = createContext(null);
export const App = () => (<BrowserRouter><Routes /></BrowserRouter>);`
	issues, _ := runAll(t, above, false)
	if len(issuesOf(issues, diag.KindContextAboveRouter)) != 1 {
		t.Error("context before router root should be flagged")
	}

	// Context keywords only after the router marker: not flagged, no matter
	// how many later occurrences there are.
	below := `export const App = () => (<BrowserRouter><Routes /></BrowserRouter>);
const Ctx = createContext(null);
useContext(Ctx); useContext(Ctx); useContext(Ctx);`
	issues, _ = runAll(t, below, false)
	if len(issuesOf(issues, diag.KindContextAboveRouter)) != 0 {
		t.Error("context after router root must not be flagged")
	}
}

func TestContextRuleNeedsBothMarkers(t *testing.T) {
	issues, _ := runAll(t, `const Ctx = createContext(null);`, false)
	if len(issuesOf(issues, diag.KindContextAboveRouter)) != 0 {
		t.Error("context without a router marker must not be flagged")
	}
	issues, _ = runAll(t, `export default () => <RouterProvider router={r} />;`, false)
	if len(issuesOf(issues, diag.KindContextAboveRouter)) != 0 {
		t.Error("router marker without context must not be flagged")
	}
}

func TestMarkerRules(t *testing.T) {
	issues, recs := runAll(t, `<NavigationBlocker when={dirty} />`, false)
	if len(issuesOf(issues, diag.KindNavigationBlocker)) != 1 {
		t.Error("NavigationBlocker token should be flagged")
	}
	if len(recs) == 0 {
		t.Error("expected a placement-review recommendation")
	}

	issues, _ = runAll(t, `const { active } = useContext(UserActivityContext);`, false)
	if len(issuesOf(issues, diag.KindActivityTracking)) != 1 {
		t.Error("UserActivityContext token should be flagged")
	}
}

func TestMissingMemoProbe(t *testing.T) {
	issues, _ := runAll(t, `const names = items.map((i) => i.name);`, false)
	if len(issuesOf(issues, diag.KindMissingMemo)) != 1 {
		t.Error("iteration without memo hooks should be flagged")
	}

	issues, _ = runAll(t, `const names = useMemo(() => items.map((i) => i.name), [items]);`, false)
	if len(issuesOf(issues, diag.KindMissingMemo)) != 0 {
		t.Error("useMemo anywhere in the file suppresses the probe")
	}
}

func TestDuplicateSuspenseRecommendationOnlyExtended(t *testing.T) {
	text := `<Suspense fallback={a}><Suspense fallback={b}><Outlet /></Suspense></Suspense>`

	issues, recs := runAll(t, text, false)
	dup := issuesOf(issues, diag.KindDuplicateSuspense)
	if len(dup) != 1 || dup[0].Count != 2 {
		t.Fatalf("expected one issue with count 2, got %+v", dup)
	}
	for _, r := range recs {
		if r.Message == "consolidate the Suspense boundaries into a single one per route level" {
			t.Error("consolidation recommendation must not appear outside extended mode")
		}
	}

	_, recs = runAll(t, text, true)
	found := false
	for _, r := range recs {
		if r.Message == "consolidate the Suspense boundaries into a single one per route level" {
			found = true
		}
	}
	if !found {
		t.Error("extended mode should add the consolidation recommendation")
	}
}

func TestUnmemoizedShellHook(t *testing.T) {
	issues, _ := runAll(t, `const shell = useAppShell();`, false)
	if len(issuesOf(issues, diag.KindUnmemoizedShellHook)) != 1 {
		t.Error("useAppShell without memo hooks should be flagged")
	}

	issues, _ = runAll(t, `const shell = useAppShell(); useMemo(f, []); useCallback(g, []);`, false)
	if len(issuesOf(issues, diag.KindUnmemoizedShellHook)) != 0 {
		t.Error("both memo hooks present suppresses the issue")
	}

	// Only one of the two hooks present: still flagged.
	issues, _ = runAll(t, `const shell = useAppShell(); useMemo(f, []);`, false)
	if len(issuesOf(issues, diag.KindUnmemoizedShellHook)) != 1 {
		t.Error("a single memo hook is not enough")
	}
}

func TestPerfSmellsAreIndependent(t *testing.T) {
	text := `console.log("x"); debugger; const c = JSON.parse(JSON.stringify(state));`
	issues, _ := runAll(t, text, false)
	if got := len(issuesOf(issues, diag.KindPerfSmell)); got != 3 {
		t.Errorf("expected 3 independent perf-smell issues, got %d", got)
	}
}

func TestRuleEvaluationIsDeterministic(t *testing.T) {
	text := `const Ctx = createContext(null);
const client = new QueryClient();
const el = routes.map(({ path, Component }) => null);
console.log(el);
<BrowserRouter />`

	first, _ := runAll(t, text, true)
	second, _ := runAll(t, text, true)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical content must yield an identical ordered issue list")
	}
}

func TestEnabledFiltersDisabledIDs(t *testing.T) {
	table := Enabled([]string{"performance-smell", "missing-memoization", "not-a-rule"})
	for _, r := range table {
		if r.Kind == diag.KindPerfSmell || r.Kind == diag.KindMissingMemo {
			t.Errorf("rule %s should be disabled", r.Kind.ID())
		}
	}
	if len(table) != len(All())-2 {
		t.Errorf("expected %d rules, got %d", len(All())-2, len(table))
	}
}
