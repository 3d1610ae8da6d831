package config

import (
	"errors"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultServerAddr   = "127.0.0.1:8484"
	defaultEndpointBase = "http://127.0.0.1:8484"
	defaultProvider     = "openai"
	defaultModel        = "gpt-4o-mini"
)

type Settings struct {
	LLM     LLMSettings     `toml:"llm"`
	Server  ServerSettings  `toml:"server"`
	Planner PlannerSettings `toml:"planner"`
}

type LLMSettings struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

type ServerSettings struct {
	Addr string `toml:"addr"`
}

// PlannerSettings configures the wizard client side.
type PlannerSettings struct {
	// EndpointBase is the base URL of the step endpoint family.
	EndpointBase string `toml:"endpoint_base"`
	// ExportDir is where exported help sheets are written; empty means CWD.
	ExportDir string `toml:"export_dir"`
}

func DefaultSettings() Settings {
	return Settings{
		LLM: LLMSettings{
			Provider: defaultProvider,
			Model:    defaultModel,
		},
		Server:  ServerSettings{Addr: defaultServerAddr},
		Planner: PlannerSettings{EndpointBase: defaultEndpointBase},
	}
}

// LoadSettings reads the settings file, falling back to defaults when the
// file is missing. OPENAI_API_KEY fills the key when the file leaves it empty.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return loadSettingsFromPath(path)
}

func loadSettingsFromPath(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.applyEnv()
			return s, nil
		}
		return Settings{}, err
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	s.fillDefaults()
	s.applyEnv()
	return s, nil
}

func (s *Settings) fillDefaults() {
	if strings.TrimSpace(s.LLM.Provider) == "" {
		s.LLM.Provider = defaultProvider
	}
	if strings.TrimSpace(s.LLM.Model) == "" {
		s.LLM.Model = defaultModel
	}
	if strings.TrimSpace(s.Server.Addr) == "" {
		s.Server.Addr = defaultServerAddr
	}
	if strings.TrimSpace(s.Planner.EndpointBase) == "" {
		s.Planner.EndpointBase = defaultEndpointBase
	}
}

func (s *Settings) applyEnv() {
	if s.LLM.APIKey == "" {
		s.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
