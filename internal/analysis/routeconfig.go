package analysis

import (
	"regexp"
	"strings"
)

// RouteFileConfig is the per-file structural summary built in extended
// mode. It is extracted independently of rule outcomes.
type RouteFileConfig struct {
	File                 string   `json:"file"`
	HasContext           bool     `json:"hasContext"`
	HasNavigationBlocker bool     `json:"hasNavigationBlocker"`
	MultipleQueryClients bool     `json:"multipleQueryClients"`
	UnmemoizedRoutes     bool     `json:"unmemoizedRoutes"`
	UsesReactRouter      bool     `json:"usesReactRouter"`
	UsesAppShell         bool     `json:"usesAppShell"`
	ComponentCount       int      `json:"componentCount"`
	Imports              []string `json:"imports,omitempty"`
}

var (
	importRe    = regexp.MustCompile(`import\s+[^;]*?from\s+['"]([^'"]+)['"]`)
	componentRe = regexp.MustCompile(`(?:function|const)\s+[A-Z][A-Za-z0-9]*`)
	routesMapRe = regexp.MustCompile(`routes\.map\(\s*\(\s*\{\s*path\s*,\s*Component\s*\}`)
)

// BuildRouteFileConfig extracts the structural summary from file text.
func BuildRouteFileConfig(path, text string) RouteFileConfig {
	return RouteFileConfig{
		File:                 path,
		HasContext:           strings.Contains(text, "createContext") || strings.Contains(text, "useContext"),
		HasNavigationBlocker: strings.Contains(text, "NavigationBlocker"),
		MultipleQueryClients: strings.Count(text, "new QueryClient(") > 1,
		UnmemoizedRoutes:     routesMapRe.MatchString(text) && !strings.Contains(text, "useMemo"),
		UsesReactRouter:      strings.Contains(text, "react-router") || strings.Contains(text, "<BrowserRouter") || strings.Contains(text, "<RouterProvider"),
		UsesAppShell:         strings.Contains(text, "useAppShell") || strings.Contains(text, "@platform/app-shell"),
		ComponentCount:       len(componentRe.FindAllString(text, -1)),
		Imports:              extractImports(text),
	}
}

// extractImports returns the ordered module specifiers of every
// `import ... from '...'` occurrence.
func extractImports(text string) []string {
	matches := importRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
