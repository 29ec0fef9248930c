package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateClientConfig(t *testing.T) {
	tmpDir := t.TempDir()

	// Change to the temp directory for relative path tests
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(oldDir)
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		merge   bool
		wantErr bool
	}{
		{
			name:    "valid path",
			path:    "config.json",
			wantErr: false,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
		{
			name:    "non-json extension",
			path:    "config.txt",
			wantErr: true,
		},
		{
			name:    "path with ..",
			path:    filepath.Join("..", "config.json"),
			wantErr: true,
		},
		{
			name:    "merge with existing",
			path:    "merge.json",
			merge:   true,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.merge {
				existing := map[string]interface{}{
					"existing_key": "existing_value",
					"mcpServers": map[string]interface{}{
						"OtherServer": map[string]interface{}{"command": "/usr/bin/other"},
					},
				}
				data, err := json.Marshal(existing)
				if err != nil {
					t.Fatalf("Failed to marshal existing config: %v", err)
				}
				if err := os.WriteFile(tt.path, data, 0600); err != nil {
					t.Fatalf("Failed to write existing config: %v", err)
				}
			}

			err := generateClientConfig(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("generateClientConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("Failed to stat config file: %v", err)
			}
			if mode := info.Mode(); mode != 0600 {
				t.Errorf("Config file has wrong permissions: %v, want 0600", mode)
			}

			data, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("Failed to read config file: %v", err)
			}
			var config map[string]interface{}
			if err := json.Unmarshal(data, &config); err != nil {
				t.Fatalf("Failed to parse config JSON: %v", err)
			}

			servers, ok := config["mcpServers"].(map[string]interface{})
			if !ok {
				t.Fatal("Config missing 'mcpServers' section")
			}
			entry, ok := servers["GoogleMaps"].(map[string]interface{})
			if !ok {
				t.Fatal("Config missing 'GoogleMaps' server entry")
			}
			env, ok := entry["env"].(map[string]interface{})
			if !ok {
				t.Fatal("Server entry missing 'env' section")
			}
			// The entry references the variable, never a literal key.
			if env["GOOGLE_MAPS_API_KEY"] != "${GOOGLE_MAPS_API_KEY}" {
				t.Errorf("env GOOGLE_MAPS_API_KEY = %v, want placeholder", env["GOOGLE_MAPS_API_KEY"])
			}

			if tt.merge {
				if val, ok := config["existing_key"]; !ok || val != "existing_value" {
					t.Error("Merge failed to preserve existing content")
				}
				if _, ok := servers["OtherServer"]; !ok {
					t.Error("Merge failed to preserve existing server entries")
				}
			}
		})
	}
}
