// Package auth handles the OAuth credential and token plumbing for the
// Google Calendar backend.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const (
	credentialsFileName = "credentials.json"
	tokenFileName       = "token.json"
)

// Full calendar scope: the tool lists, inserts and deletes events.
var scope = []string{calendar.CalendarScope}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "gcalendar"), nil
}

func credentialsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFileName), nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, tokenFileName), nil
}

func oauthConfig() (*oauth2.Config, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s, please run 'set-oauth-credentials' first: %w", credentialsFileName, err)
	}

	config, err := google.ConfigFromJSON(b, scope...)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}
	return config, nil
}

// Client returns an authenticated HTTP client backed by the stored
// token.
func Client() (*http.Client, error) {
	config, err := oauthConfig()
	if err != nil {
		return nil, err
	}

	tok, err := tokenFromFile()
	if err != nil {
		return nil, fmt.Errorf("token not found, please run 'login' first: %w", err)
	}

	return config.Client(context.Background(), tok), nil
}

// GetTokenFromWeb walks the user through the out-of-band authorization
// flow and caches the resulting token.
func GetTokenFromWeb() error {
	config, err := oauthConfig()
	if err != nil {
		return err
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser:\n%v\n", authURL)
	fmt.Println("Enter the authorization code:")

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := config.Exchange(context.Background(), authCode)
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	if err := saveToken(tok); err != nil {
		return err
	}
	fmt.Println("Authentication successful!")
	return nil
}

// CopyCredentialsFile installs an OAuth client ID file from the GCP
// console into the config dir.
func CopyCredentialsFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read credentials file %q: %w", path, err)
	}
	// Validate before installing so a bad file fails loudly here.
	if _, err := google.ConfigFromJSON(b, scope...); err != nil {
		return fmt.Errorf("%q is not a valid OAuth client file: %w", path, err)
	}

	dest, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(dest, b, 0600); err != nil {
		return fmt.Errorf("installing credentials to %q: %w", dest, err)
	}
	fmt.Printf("Credentials saved to %s\n", dest)
	return nil
}

func tokenFromFile() (*oauth2.Token, error) {
	path, err := tokenPath()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

func saveToken(token *oauth2.Token) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
