package analysis

// Dependency is one entry of the static known-library table, annotated
// with whether the scan detected it.
type Dependency struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	Critical   bool     `json:"critical"`
	Components []string `json:"components,omitempty"`
	KnownIssue string   `json:"knownIssue,omitempty"`
	Detected   bool     `json:"detected"`
}

// knownDependencies is the static table; Detected starts false and is
// computed over all RouteFileConfigs after the walk.
func knownDependencies() []Dependency {
	return []Dependency{
		{
			Name:       "react-router",
			Version:    ">=6",
			Critical:   true,
			Components: []string{"BrowserRouter", "RouterProvider", "Routes", "Route"},
			KnownIssue: "route elements recreated per render remount their component subtree",
		},
		{
			Name:       "react-router-dom",
			Version:    ">=6",
			Critical:   true,
			Components: []string{"Link", "NavLink", "Outlet", "useNavigate"},
			KnownIssue: "navigation against unstable route objects replays mount effects",
		},
		{
			Name:       "@tanstack/react-query",
			Version:    ">=4",
			Critical:   false,
			Components: []string{"QueryClient", "QueryClientProvider"},
			KnownIssue: "a QueryClient built per render drops the cache and refetches on navigation",
		},
		{
			Name:       "@platform/app-shell",
			Version:    "*",
			Critical:   false,
			Components: []string{"useAppShell", "AppShellProvider"},
			KnownIssue: "unstable shell callbacks cascade re-renders into every route",
		},
	}
}

// detectDependencies fills the Detected flags from the collected route
// configs. react-router and react-router-dom share the router-usage flag.
func detectDependencies(configs []RouteFileConfig) []Dependency {
	deps := knownDependencies()
	for _, cfg := range configs {
		if cfg.UsesReactRouter {
			deps[0].Detected = true
			deps[1].Detected = true
		}
		if cfg.MultipleQueryClients {
			deps[2].Detected = true
		}
		if cfg.UsesAppShell {
			deps[3].Detected = true
		}
	}
	return deps
}
