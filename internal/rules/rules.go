// Package rules holds the detector table. Every rule is a pure function
// over whole-file text; matches inside comments or string literals are
// indistinguishable from real code, which is accepted.
package rules

import (
	"routelint/internal/diag"
	"routelint/internal/source"
)

// Context carries one file through the rule table.
type Context struct {
	File     *source.File
	Path     string // workspace-relative path recorded on issues
	Text     string
	Extended bool // extended report mode is active
	Reporter diag.Reporter
}

// NewContext prepares a rule context for one loaded file.
func NewContext(f *source.File, path string, extended bool, rep diag.Reporter) *Context {
	return &Context{
		File:     f,
		Path:     path,
		Text:     f.Text(),
		Extended: extended,
		Reporter: rep,
	}
}

func (c *Context) span(start, end int) source.Span {
	return source.NewSpan(c.File.ID, uint32(start), uint32(end))
}

func (c *Context) issue(iss diag.Issue) {
	iss.File = c.Path
	c.Reporter.Issue(iss)
}

func (c *Context) recommend(priority diag.Severity, message, action string) {
	c.Reporter.Recommend(diag.Recommendation{
		File:     c.Path,
		Priority: priority,
		Message:  message,
		Action:   action,
	})
}

// Rule is one independent detector. Rules never short-circuit each other;
// a file can accumulate issues from every rule.
type Rule struct {
	Kind     diag.Kind
	Severity diag.Severity
	Summary  string
	Check    func(ctx *Context)
}

// All returns the full rule table in fixed evaluation order.
func All() []Rule {
	return []Rule{
		{
			Kind:     diag.KindDynamicRoutes,
			Severity: diag.SevHigh,
			Summary:  "route table generated by mapping over a routes array inline",
			Check:    checkDynamicRoutes,
		},
		{
			Kind:     diag.KindAdHocQueryClient,
			Severity: diag.SevMedium,
			Summary:  "QueryClient constructed inside a component body",
			Check:    checkAdHocQueryClient,
		},
		{
			Kind:     diag.KindContextAboveRouter,
			Severity: diag.SevHigh,
			Summary:  "context provider placed above the router root",
			Check:    checkContextAboveRouter,
		},
		{
			Kind:     diag.KindNavigationBlocker,
			Severity: diag.SevMedium,
			Summary:  "NavigationBlocker present; placement can block or remount routes",
			Check:    checkNavigationBlocker,
		},
		{
			Kind:     diag.KindActivityTracking,
			Severity: diag.SevMedium,
			Summary:  "UserActivityContext present; can interfere with navigation",
			Check:    checkActivityTracking,
		},
		{
			Kind:     diag.KindMissingMemo,
			Severity: diag.SevLow,
			Summary:  "collection iteration without useMemo/useCallback anywhere in the file",
			Check:    checkMissingMemo,
		},
		{
			Kind:     diag.KindDuplicateSuspense,
			Severity: diag.SevMedium,
			Summary:  "more than one Suspense boundary in a single route module",
			Check:    checkDuplicateSuspense,
		},
		{
			Kind:     diag.KindUnmemoizedShellHook,
			Severity: diag.SevMedium,
			Summary:  "useAppShell without both useMemo and useCallback",
			Check:    checkUnmemoizedShellHook,
		},
		{
			Kind:     diag.KindPerfSmell,
			Severity: diag.SevLow,
			Summary:  "debug statements or JSON deep clones left in route code",
			Check:    checkPerfSmells,
		},
	}
}

// Enabled filters the table by a set of disabled rule IDs.
// Unknown IDs are ignored.
func Enabled(disabled []string) []Rule {
	if len(disabled) == 0 {
		return All()
	}
	off := make(map[diag.Kind]bool, len(disabled))
	for _, id := range disabled {
		if k, ok := diag.ParseKind(id); ok {
			off[k] = true
		}
	}
	all := All()
	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if !off[r.Kind] {
			out = append(out, r)
		}
	}
	return out
}

// Run evaluates every rule in table order against one file.
func Run(table []Rule, ctx *Context) {
	for i := range table {
		table[i].Check(ctx)
	}
}
