package rules

import (
	"strings"

	"routelint/internal/diag"
)

// firstIndexAny returns the smallest index at which any of the tokens
// occurs, together with the token that occurs there. Returns -1 when none
// of the tokens is present.
func firstIndexAny(text string, tokens []string) (int, string) {
	best := -1
	bestToken := ""
	for _, tok := range tokens {
		if idx := strings.Index(text, tok); idx >= 0 && (best < 0 || idx < best) {
			best = idx
			bestToken = tok
		}
	}
	return best, bestToken
}

func checkDynamicRoutes(c *Context) {
	loc := routesMapRe.FindStringIndex(c.Text)
	if loc == nil {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindDynamicRoutes,
		Severity: diag.SevHigh,
		Span:     c.span(loc[0], loc[1]),
		Message:  "route elements are generated inline from routes.map; the array is rebuilt on every render and all route components remount",
		Pattern:  c.Text[loc[0]:loc[1]],
		Fix:      "memoize-routes",
	})
	if !strings.Contains(c.Text, tokenUseMemo) {
		c.recommend(diag.SevHigh,
			"wrap the routes array in useMemo so route elements keep their identity across renders",
			"apply fix template memoize-routes")
	}
}

func checkAdHocQueryClient(c *Context) {
	count := strings.Count(c.Text, tokenQueryClientNew)
	if count == 0 {
		return
	}
	idx := strings.Index(c.Text, tokenQueryClientNew)
	c.issue(diag.Issue{
		Kind:     diag.KindAdHocQueryClient,
		Severity: diag.SevMedium,
		Span:     c.span(idx, idx+len(tokenQueryClientNew)),
		Message:  "QueryClient is constructed in this module; a new client per render drops the query cache and refetches everything",
		Count:    count,
		Fix:      "share-query-client",
	})
	c.recommend(diag.SevMedium,
		"hoist the QueryClient construction to module scope or share a single instance through a provider",
		"apply fix template share-query-client")
}

// checkContextAboveRouter compares the first occurrence index of any
// context token against the first occurrence index of any router-root
// marker. This is a textual proxy for JSX nesting, not a structural check;
// later occurrences are ignored on purpose.
func checkContextAboveRouter(c *Context) {
	ctxIdx, ctxToken := firstIndexAny(c.Text, contextTokens)
	routerIdx, _ := firstIndexAny(c.Text, routerRootTokens)
	if ctxIdx < 0 || routerIdx < 0 || ctxIdx >= routerIdx {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindContextAboveRouter,
		Severity: diag.SevHigh,
		Span:     c.span(ctxIdx, ctxIdx+len(ctxToken)),
		Message:  "a context appears above the router root; provider state changes remount the whole route tree",
		Pattern:  ctxToken,
		Fix:      "lower-context-provider",
	})
	c.recommend(diag.SevHigh,
		"move the provider below shell-level routing but above the module routes it serves",
		"apply fix template lower-context-provider")
}

func checkNavigationBlocker(c *Context) {
	idx := strings.Index(c.Text, tokenNavBlocker)
	if idx < 0 {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindNavigationBlocker,
		Severity: diag.SevMedium,
		Span:     c.span(idx, idx+len(tokenNavBlocker)),
		Message:  "NavigationBlocker is used in this module; misplaced blockers cancel or replay navigations and can remount routes",
	})
	c.recommend(diag.SevMedium,
		"review where NavigationBlocker is mounted and under which conditions it blocks",
		"")
}

func checkActivityTracking(c *Context) {
	idx := strings.Index(c.Text, tokenActivityContext)
	if idx < 0 {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindActivityTracking,
		Severity: diag.SevMedium,
		Span:     c.span(idx, idx+len(tokenActivityContext)),
		Message:  "UserActivityContext is used in this module; frequent activity updates above routes re-render the route tree",
	})
	c.recommend(diag.SevMedium,
		"check UserActivityContext consumers for navigation interference and debounce its updates",
		"")
}

func checkMissingMemo(c *Context) {
	idx, token := firstIndexAny(c.Text, iterationTokens)
	if idx < 0 {
		return
	}
	if strings.Contains(c.Text, tokenUseMemo) || strings.Contains(c.Text, tokenUseCallback) {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindMissingMemo,
		Severity: diag.SevLow,
		Span:     c.span(idx, idx+len(token)),
		Message:  "collections are iterated but the file uses neither useMemo nor useCallback; derived values are rebuilt every render",
		Fix:      "memoize-derived-values",
	})
	c.recommend(diag.SevLow,
		"memoize derived collections and handlers passed into route components",
		"apply fix template memoize-derived-values")
}

func checkDuplicateSuspense(c *Context) {
	count := strings.Count(c.Text, tokenSuspenseOpen)
	if count <= 1 {
		return
	}
	idx := strings.Index(c.Text, tokenSuspenseOpen)
	c.issue(diag.Issue{
		Kind:     diag.KindDuplicateSuspense,
		Severity: diag.SevMedium,
		Span:     c.span(idx, idx+len(tokenSuspenseOpen)),
		Message:  "multiple Suspense boundaries in one route module; nested fallbacks flash and can look like remounts",
		Count:    count,
	})
	if c.Extended {
		c.recommend(diag.SevMedium,
			"consolidate the Suspense boundaries into a single one per route level",
			"")
	}
}

func checkUnmemoizedShellHook(c *Context) {
	idx := strings.Index(c.Text, tokenAppShellHook)
	if idx < 0 {
		return
	}
	if strings.Contains(c.Text, tokenUseMemo) && strings.Contains(c.Text, tokenUseCallback) {
		return
	}
	c.issue(diag.Issue{
		Kind:     diag.KindUnmemoizedShellHook,
		Severity: diag.SevMedium,
		Span:     c.span(idx, idx+len(tokenAppShellHook)),
		Message:  "useAppShell is called without both useMemo and useCallback; unstable shell values cascade re-renders into routes",
		Fix:      "memoize-shell-callbacks",
	})
}

// checkPerfSmells runs three independent probes; each present probe emits
// its own issue even when earlier ones matched.
func checkPerfSmells(c *Context) {
	probes := []struct {
		token   string
		message string
	}{
		{tokenConsoleLog, "console.log left in route code; logging on every render hides real timing problems"},
		{tokenDebugger, "debugger statement left in route code"},
		{tokenJSONClone, "JSON.parse(JSON.stringify(...)) deep clone in route code; clones run on every render"},
	}
	for _, p := range probes {
		idx := strings.Index(c.Text, p.token)
		if idx < 0 {
			continue
		}
		c.issue(diag.Issue{
			Kind:     diag.KindPerfSmell,
			Severity: diag.SevLow,
			Span:     c.span(idx, idx+len(p.token)),
			Message:  p.message,
			Pattern:  p.token,
			Fix:      "strip-debug-code",
		})
	}
}
