package diag

// Kind identifies which detector produced an issue.
type Kind uint8

const (
	// KindUnknown is the zero value; no detector emits it.
	KindUnknown Kind = iota
	// KindDynamicRoutes flags route tables generated by mapping over a
	// routes array inline in the component body.
	KindDynamicRoutes
	// KindAdHocQueryClient flags QueryClient construction inside a component.
	KindAdHocQueryClient
	// KindContextAboveRouter flags context providers that appear above the
	// router root in the file.
	KindContextAboveRouter
	// KindNavigationBlocker flags usage of the NavigationBlocker component.
	KindNavigationBlocker
	// KindActivityTracking flags usage of UserActivityContext.
	KindActivityTracking
	// KindMissingMemo flags iteration over collections without any
	// memoization hook in the file.
	KindMissingMemo
	// KindDuplicateSuspense flags more than one Suspense boundary per file.
	KindDuplicateSuspense
	// KindUnmemoizedShellHook flags useAppShell without useMemo/useCallback.
	KindUnmemoizedShellHook
	// KindPerfSmell flags leftover debug statements and deep-clone idioms.
	KindPerfSmell

	kindCount
)

var kindIDs = [...]string{
	KindUnknown:             "unknown",
	KindDynamicRoutes:       "dynamic-route-generation",
	KindAdHocQueryClient:    "query-client-in-component",
	KindContextAboveRouter:  "context-above-router",
	KindNavigationBlocker:   "navigation-blocker",
	KindActivityTracking:    "activity-tracking-context",
	KindMissingMemo:         "missing-memoization",
	KindDuplicateSuspense:   "duplicate-suspense",
	KindUnmemoizedShellHook: "unmemoized-shell-hook",
	KindPerfSmell:           "performance-smell",
}

// ID returns the stable string identifier used in reports and config files.
func (k Kind) ID() string {
	if int(k) < len(kindIDs) {
		return kindIDs[k]
	}
	return "unknown"
}

func (k Kind) String() string { return k.ID() }

// ParseKind maps a stable string identifier back to a Kind.
func ParseKind(id string) (Kind, bool) {
	for k := KindUnknown + 1; k < kindCount; k++ {
		if kindIDs[k] == id {
			return k, true
		}
	}
	return KindUnknown, false
}

// Kinds lists every detector kind in rule-table order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
