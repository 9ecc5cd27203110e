package fixes

import (
	"testing"

	"routelint/internal/diag"
	"routelint/internal/rules"
	"routelint/internal/source"
)

func TestByID(t *testing.T) {
	tpl, ok := ByID("memoize-routes")
	if !ok {
		t.Fatal("memoize-routes template missing")
	}
	if tpl.Kind != diag.KindDynamicRoutes {
		t.Errorf("kind = %v, want dynamic routes", tpl.Kind)
	}
	if tpl.Before == "" || tpl.After == "" {
		t.Error("template must carry before/after snippets")
	}
	if _, ok := ByID("no-such-template"); ok {
		t.Error("unknown ID should miss")
	}
}

// Every fix ID a rule attaches to an issue must resolve to a template.
func TestRuleFixReferencesResolve(t *testing.T) {
	text := `
const Ctx = createContext(null);
const client = new QueryClient();
const el = routes.map(({ path, Component }) => null);
const shell = useAppShell();
console.log(el); debugger;
const copy = JSON.parse(JSON.stringify(el));
<BrowserRouter />`

	fs := source.NewFileSet()
	id := fs.AddVirtual("routes.tsx", []byte(text))
	bag := diag.NewBag(0)
	var recs []diag.Recommendation
	ctx := rules.NewContext(fs.Get(id), "routes.tsx", true, diag.BagReporter{Bag: bag, Recs: &recs})
	rules.Run(rules.All(), ctx)

	for _, iss := range bag.Items() {
		if iss.Fix == "" {
			continue
		}
		if _, ok := ByID(iss.Fix); !ok {
			t.Errorf("issue %s references unknown fix template %q", iss.Kind.ID(), iss.Fix)
		}
	}
}

func TestAllTemplatesHaveDistinctIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, tpl := range All() {
		if seen[tpl.ID] {
			t.Errorf("duplicate template ID %q", tpl.ID)
		}
		seen[tpl.ID] = true
	}
}
