package platform

const (
	// Config.
	ConfigDir  = "/etc/ocpanel"
	ConfigFile = ConfigDir + "/config.yaml"

	// Host files probed on every request.
	ResolvConf = "/etc/resolv.conf"

	// VPN client under supervisord.
	VPNInterface      = "tun0"
	SupervisorBinary  = "supervisorctl"
	SupervisorProgram = "openconnect-vpn"
	SupervisorLogDir  = "/var/log/supervisor"
	VPNStdoutLog      = SupervisorLogDir + "/openconnect-vpn.log"
	VPNStderrLog      = SupervisorLogDir + "/openconnect-vpn-error.log"

	// Web UI.
	DefaultListen = ":8443"
	GuacamolePort = 8080
	GuacamolePath = "/guacamole/"
)
