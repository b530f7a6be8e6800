package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

const (
	WebpenDir          = ".webpen"
	SettingsFile       = "settings.yaml"
	DefaultPreviewFile = "preview.html"
)

// InitProjectStructure creates the .webpen directory and a default
// settings file when one does not exist yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(WebpenDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", WebpenDir, err)
	}

	settingsPath := filepath.Join(WebpenDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ReadSettings loads the settings file, falling back to defaults when no
// project structure exists. Unset fields keep their default values.
func ReadSettings() (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(filepath.Join(WebpenDir, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// WriteSettings saves the settings file inside the project directory.
func WriteSettings(settings *models.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(WebpenDir, SettingsFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}

// WritePreviewFile writes an assembled preview document to disk so it can
// be opened in a real browser.
func WritePreviewFile(content, path string) error {
	if path == "" {
		path = DefaultPreviewFile
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write preview %s: %w", path, err)
	}

	return nil
}

// ReadFragment reads a source fragment from disk for assembly, enforcing
// the same size cap as workspace imports.
func ReadFragment(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %s: %w", path, err)
	}
	if info.Size() > workspace.MaxImportSize {
		return "", &workspace.SizeLimitError{
			Name:  filepath.Base(path),
			Size:  int(info.Size()),
			Limit: workspace.MaxImportSize,
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read fragment %s: %w", path, err)
	}

	return string(content), nil
}

// ExportNode writes a workspace file's content to disk. The destination
// defaults to the node's own name in the current directory.
func ExportNode(node *models.FileNode, path string) error {
	raw, err := workspace.ExportFile(node)
	if err != nil {
		return err
	}

	if path == "" {
		path = node.Name
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to export %s: %w", node.Name, err)
	}

	return nil
}
