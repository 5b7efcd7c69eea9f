// Copyright (c) FounderHub <https://founderhub.ai/>
// SPDX-License-Identifier: MIT

package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName   = ".founderhub"
	linkedinDirName = "linkedin"
	tokenFileName   = "token.json"
)

// getConfigDir returns the configuration directory path
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", NewAuthErrorWithCause(ErrTokenStorage, "failed to get user home directory", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// getTokenFilePath returns the full path to the token file
func getTokenFilePath() (string, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, linkedinDirName, tokenFileName), nil
}

// SaveToken persists the record, replacing any previous one. The write
// goes to a temp file in the same directory followed by a rename, so a
// crash cannot leave a partial token file behind.
func SaveToken(record *TokenRecord) error {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return err
	}

	// Create the token directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(tokenPath), 0700); err != nil {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to create token directory", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to marshal token", err)
	}

	tmpPath := tokenPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to write token file", err)
	}

	if err := os.Rename(tmpPath, tokenPath); err != nil {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to replace token file", err)
	}

	return nil
}

// LoadToken loads the stored token record from disk
func LoadToken() (*TokenRecord, error) {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewAuthError(ErrInvalidToken, "no stored token found. Run `founderhub linkedin login`.")
		}
		return nil, NewAuthErrorWithCause(ErrTokenStorage, "failed to read token file", err)
	}

	var record TokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, NewAuthErrorWithCause(ErrTokenStorage, "failed to unmarshal token file", err)
	}

	return &record, nil
}

// ClearToken removes the stored token
func ClearToken() error {
	tokenPath, err := getTokenFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil && !os.IsNotExist(err) {
		return NewAuthErrorWithCause(ErrTokenStorage, "failed to remove token file", err)
	}

	return nil
}

func CheckTokenExpiry(record *TokenRecord) error {
	if record.Expired() {
		return NewAuthError(ErrTokenExpired, "Token is expired. Re-run `founderhub linkedin login`")
	}
	return nil
}
