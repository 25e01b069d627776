package config

import (
	"flag"
	"strings"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-f accounts store file path
//	-key record obfuscation key
//	-c/-config json file path with configs
//	-max-attempts wrong PIN submissions tolerated before lockout
//	-pin-length issued PIN length (4 or 6)
//	-starting-balance opening balance for new accounts (e.g. "1000.00")
//	-banned comma-separated PINs the generator must never issue
//	-generator-retries generation retry ceiling
func ParseFlags() *StructuredConfig {
	var accountsFile string
	var obfuscationKey string
	var jsonConfigPath string
	var maxWrongAttempts int
	var pinLength int
	var startingBalance string
	var bannedPINs string
	var generatorMaxRetries int

	flag.StringVar(&accountsFile, "f", "", "Accounts store file path")
	flag.StringVar(&obfuscationKey, "key", "", "Record obfuscation key")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&maxWrongAttempts, "max-attempts", 0, "Wrong PIN submissions tolerated before lockout")
	flag.IntVar(&pinLength, "pin-length", 0, "Issued PIN length (4 or 6)")
	flag.StringVar(&startingBalance, "starting-balance", "", "Opening balance for new accounts")
	flag.StringVar(&bannedPINs, "banned", "", "Comma-separated banned PINs")
	flag.IntVar(&generatorMaxRetries, "generator-retries", 0, "PIN generation retry ceiling")

	flag.Parse()

	var banned []string
	if bannedPINs != "" {
		banned = strings.Split(bannedPINs, ",")
	}

	return &StructuredConfig{
		App: App{
			MaxWrongAttempts:    maxWrongAttempts,
			PINLength:           pinLength,
			StartingBalance:     startingBalance,
			ObfuscationKey:      obfuscationKey,
			BannedPINs:          banned,
			GeneratorMaxRetries: generatorMaxRetries,
		},
		Storage: Storage{
			Files: Files{
				AccountsFile: accountsFile,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
