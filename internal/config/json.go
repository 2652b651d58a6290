package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type desktopJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Tailnet struct {
		SocketPath      string   `json:"socket_path"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"tailnet,omitempty"`

	Storage struct {
		ProjectsFile string `json:"projects_file"`
		UploadRoot   string `json:"upload_root"`
		HistoryDSN   string `json:"history_dsn"`
	} `json:"storage,omitempty"`
}

type mobileJSONConfig struct {
	Client struct {
		ServerURL      string   `json:"server_url"`
		PollInterval   Duration `json:"poll_interval"`
		CommandSlice   Duration `json:"command_slice"`
		RequestTimeout Duration `json:"request_timeout"`
		StateDir       string   `json:"state_dir"`
		OutputDir      string   `json:"output_dir"`
	} `json:"client,omitempty"`
}

func parseDesktopJSON(jsonFilePath string) (*DesktopConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg desktopJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &DesktopConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Tailnet: Tailnet{
			SocketPath:      jsonCfg.Tailnet.SocketPath,
			RefreshInterval: time.Duration(jsonCfg.Tailnet.RefreshInterval),
		},
		Storage: Storage{
			ProjectsFile: jsonCfg.Storage.ProjectsFile,
			UploadRoot:   jsonCfg.Storage.UploadRoot,
			HistoryDSN:   jsonCfg.Storage.HistoryDSN,
		},
	}

	return cfg, nil
}

func parseMobileJSON(jsonFilePath string) (*MobileConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg mobileJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &MobileConfig{
		Client: Client{
			ServerURL:      jsonCfg.Client.ServerURL,
			PollInterval:   time.Duration(jsonCfg.Client.PollInterval),
			CommandSlice:   time.Duration(jsonCfg.Client.CommandSlice),
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			StateDir:       jsonCfg.Client.StateDir,
			OutputDir:      jsonCfg.Client.OutputDir,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
