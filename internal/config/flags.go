package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseDesktopFlags parses the desktop node's configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-socket tailscaled control socket path
//	-refresh-interval tailnet refresh interval (e.g., "5s")
//	-projects-file sync project table JSON path
//	-upload-root upload root directory
//	-history-dsn transfer history sqlite DSN
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func parseDesktopFlags() *DesktopConfig {
	var serverAddress NetAddress
	var socketPath string
	var refreshInterval time.Duration
	var projectsFile string
	var uploadRoot string
	var historyDSN string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&socketPath, "socket", "", "Tailscaled control socket path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Tailnet refresh interval (e.g., 5s)")
	flag.StringVar(&projectsFile, "projects-file", "", "Sync project table JSON path")
	flag.StringVar(&uploadRoot, "upload-root", "", "Upload root directory")
	flag.StringVar(&historyDSN, "history-dsn", "", "Transfer history sqlite DSN")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &DesktopConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Tailnet: Tailnet{
			SocketPath:      socketPath,
			RefreshInterval: refreshInterval,
		},
		Storage: Storage{
			ProjectsFile: projectsFile,
			UploadRoot:   uploadRoot,
			HistoryDSN:   historyDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// parseMobileFlags parses the mobile client's configuration flags.
//
// Flags:
//
//	-server desktop service base URL
//	-poll-interval periodic poll interval (e.g., "3s")
//	-command-slice loop sleep slice (e.g., "100ms")
//	-request-timeout per-request timeout (e.g., "8s")
//	-state-dir writable state directory
//	-output-dir download/pull output directory
//	-c/-config json file path with configs
func parseMobileFlags() *MobileConfig {
	var serverURL string
	var pollInterval time.Duration
	var commandSlice time.Duration
	var requestTimeout time.Duration
	var stateDir string
	var outputDir string
	var jsonConfigPath string

	flag.StringVar(&serverURL, "server", "", "Desktop service base URL")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g., 3s)")
	flag.DurationVar(&commandSlice, "command-slice", 0, "Loop sleep slice (e.g., 100ms)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 8s)")
	flag.StringVar(&stateDir, "state-dir", "", "Writable state directory")
	flag.StringVar(&outputDir, "output-dir", "", "Download output directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &MobileConfig{
		Client: Client{
			ServerURL:      serverURL,
			PollInterval:   pollInterval,
			CommandSlice:   commandSlice,
			RequestTimeout: requestTimeout,
			StateDir:       stateDir,
			OutputDir:      outputDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
