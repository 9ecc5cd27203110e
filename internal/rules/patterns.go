package rules

import "regexp"

// Textual tokens the detectors anchor on. These are deliberate substring
// probes, not syntax: false positives inside comments and strings are part
// of the contract.
const (
	tokenUseMemo         = "useMemo"
	tokenUseCallback     = "useCallback"
	tokenQueryClientNew  = "new QueryClient("
	tokenSuspenseOpen    = "<Suspense"
	tokenNavBlocker      = "NavigationBlocker"
	tokenActivityContext = "UserActivityContext"
	tokenAppShellHook    = "useAppShell"
	tokenConsoleLog      = "console.log("
	tokenDebugger        = "debugger"
	tokenJSONClone       = "JSON.parse(JSON.stringify("
)

var (
	// routesMapRe matches destructuring path/Component out of routes.map,
	// the inline route-table idiom that rebuilds elements on every render.
	routesMapRe = regexp.MustCompile(`routes\.map\(\s*\(\s*\{\s*path\s*,\s*Component\s*\}`)

	// contextTokens and routerRootTokens feed the first-occurrence
	// comparison of the context-above-router heuristic.
	contextTokens    = []string{"createContext", "useContext"}
	routerRootTokens = []string{"<BrowserRouter", "<RouterProvider"}

	// iterationTokens are the collection calls the missing-memoization
	// probe looks for.
	iterationTokens = []string{".map(", ".filter(", ".reduce(", ".forEach("}
)
