package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		MaxWrongAttempts    int      `json:"max_wrong_attempts"`
		PINLength           int      `json:"pin_length"`
		StartingBalance     string   `json:"starting_balance"`
		ObfuscationKey      string   `json:"obfuscation_key"`
		BannedPINs          []string `json:"banned_pins"`
		GeneratorMaxRetries int      `json:"generator_max_retries"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			AccountsFile string `json:"accounts_file"`
		} `json:"files,omitempty"`
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
			MaxWrongAttempts:    jsonCfg.App.MaxWrongAttempts,
			PINLength:           jsonCfg.App.PINLength,
			StartingBalance:     jsonCfg.App.StartingBalance,
			ObfuscationKey:      jsonCfg.App.ObfuscationKey,
			BannedPINs:          jsonCfg.App.BannedPINs,
			GeneratorMaxRetries: jsonCfg.App.GeneratorMaxRetries,
		},
		Storage: Storage{
			Files: Files{
				AccountsFile: jsonCfg.Storage.Files.AccountsFile,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
