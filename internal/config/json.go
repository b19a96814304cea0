package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for the optional JSON
// configuration file. Durations accept both "30s"-style strings and raw
// nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Product string `json:"product"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Build struct {
		Configure string `json:"configure"`
		CC        string `json:"cc"`
		CPPFlags  string `json:"cppflags"`
		CFlags    string `json:"cflags"`
		CFlagsSL  string `json:"cflags_sl"`
		LDFlags   string `json:"ldflags"`
		LDFlagsSL string `json:"ldflags_sl"`
		Libs      string `json:"libs"`
	} `json:"build,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Product: jsonCfg.App.Product,
			Version: jsonCfg.App.Version,
		},
		Build: Build{
			Configure: jsonCfg.Build.Configure,
			CC:        jsonCfg.Build.CC,
			CPPFlags:  jsonCfg.Build.CPPFlags,
			CFlags:    jsonCfg.Build.CFlags,
			CFlagsSL:  jsonCfg.Build.CFlagsSL,
			LDFlags:   jsonCfg.Build.LDFlags,
			LDFlagsSL: jsonCfg.Build.LDFlagsSL,
			Libs:      jsonCfg.Build.Libs,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
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
