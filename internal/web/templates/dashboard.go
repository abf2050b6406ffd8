package templates

// DashboardData parameterizes the dashboard page.
type DashboardData struct {
	Version         string
	GuacamolePort   int
	GuacamolePath   string
	LogLines        int
	StatusPollMS    int
	ConnectPollMS   int
	ConnectAttempts int
}

// clientConfig is the page script's view of DashboardData.
type clientConfig struct {
	GuacamolePort   int    `json:"guacamolePort"`
	GuacamolePath   string `json:"guacamolePath"`
	LogLines        int    `json:"logLines"`
	StatusPollMS    int    `json:"statusPollMs"`
	ConnectPollMS   int    `json:"connectPollMs"`
	ConnectAttempts int    `json:"connectAttempts"`
}

func (d DashboardData) clientConfig() clientConfig {
	return clientConfig{
		GuacamolePort:   d.GuacamolePort,
		GuacamolePath:   d.GuacamolePath,
		LogLines:        d.LogLines,
		StatusPollMS:    d.StatusPollMS,
		ConnectPollMS:   d.ConnectPollMS,
		ConnectAttempts: d.ConnectAttempts,
	}
}
