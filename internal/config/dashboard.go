package config

// DashboardConfig sets presentation defaults for the read services.
type DashboardConfig struct {
	TeamName    string
	RecentLimit int
	StripLimit  int
}

func loadDashboard() DashboardConfig {
	return DashboardConfig{
		TeamName:    envOrDefault(envTeamName, defaultTeamName),
		RecentLimit: intEnvOrDefault(envRecentLimit, defaultRecentLimit),
		StripLimit:  intEnvOrDefault(envStripLimit, defaultStripLimit),
	}
}
