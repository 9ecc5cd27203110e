// Package fixes holds the copy-paste remediation templates referenced by
// issues and recommendations.
package fixes

import "routelint/internal/diag"

// Template is one copy-paste remediation.
type Template struct {
	ID      string
	Kind    diag.Kind
	Title   string
	Summary string
	Before  string
	After   string
}

var templates = []Template{
	{
		ID:      "memoize-routes",
		Kind:    diag.KindDynamicRoutes,
		Title:   "Memoize the routes array",
		Summary: "Keep route element identity stable across renders by building the table once.",
		Before: `export function AppRoutes() {
  return (
    <Routes>
      {routes.map(({ path, Component }) => (
        <Route key={path} path={path} element={<Component />} />
      ))}
    </Routes>
  );
}`,
		After: `export function AppRoutes() {
  const routeElements = useMemo(
    () =>
      routes.map(({ path, Component }) => (
        <Route key={path} path={path} element={<Component />} />
      )),
    []
  );
  return <Routes>{routeElements}</Routes>;
}`,
	},
	{
		ID:      "share-query-client",
		Kind:    diag.KindAdHocQueryClient,
		Title:   "Share one QueryClient",
		Summary: "Construct the client at module scope so the cache survives re-renders and navigation.",
		Before: `export function AppRoutes() {
  const queryClient = new QueryClient();
  return (
    <QueryClientProvider client={queryClient}>
      <Outlet />
    </QueryClientProvider>
  );
}`,
		After: `const queryClient = new QueryClient();

export function AppRoutes() {
  return (
    <QueryClientProvider client={queryClient}>
      <Outlet />
    </QueryClientProvider>
  );
}`,
	},
	{
		ID:      "lower-context-provider",
		Kind:    diag.KindContextAboveRouter,
		Title:   "Move the provider below the router root",
		Summary: "Providers above the router remount the whole route tree when their value changes.",
		Before: `<AppStateProvider>
  <BrowserRouter>
    <Routes>{/* ... */}</Routes>
  </BrowserRouter>
</AppStateProvider>`,
		After: `<BrowserRouter>
  <AppStateProvider>
    <Routes>{/* ... */}</Routes>
  </AppStateProvider>
</BrowserRouter>`,
	},
	{
		ID:      "memoize-derived-values",
		Kind:    diag.KindMissingMemo,
		Title:   "Memoize derived collections and handlers",
		Summary: "Derive lists with useMemo and wrap handlers in useCallback before passing them to routes.",
		Before: `const visible = items.filter((i) => i.active);
const onSelect = (id) => setSelected(id);`,
		After: `const visible = useMemo(() => items.filter((i) => i.active), [items]);
const onSelect = useCallback((id) => setSelected(id), []);`,
	},
	{
		ID:      "memoize-shell-callbacks",
		Kind:    diag.KindUnmemoizedShellHook,
		Title:   "Stabilize useAppShell values",
		Summary: "Wrap shell-derived values in useMemo and callbacks in useCallback so they stop cascading renders.",
		Before: `const shell = useAppShell();
const openPanel = () => shell.open("panel");`,
		After: `const shell = useAppShell();
const openPanel = useCallback(() => shell.open("panel"), [shell]);
const navItems = useMemo(() => buildNav(shell.items), [shell.items]);`,
	},
	{
		ID:      "strip-debug-code",
		Kind:    diag.KindPerfSmell,
		Title:   "Strip debug statements and JSON clones",
		Summary: "Remove console.log/debugger from route code and replace JSON round-trip clones.",
		Before: `console.log("render", state);
const copy = JSON.parse(JSON.stringify(state));`,
		After: `const copy = structuredClone(state);`,
	},
}

// All returns every template in registry order.
func All() []Template {
	return templates
}

// ByID looks a template up by its stable ID.
func ByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// ForKind returns the template for a rule kind, when one exists.
func ForKind(kind diag.Kind) (Template, bool) {
	for _, t := range templates {
		if t.Kind == kind {
			return t, true
		}
	}
	return Template{}, false
}
