package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webpen/webpen-cli/pkg/models"
	"github.com/webpen/webpen-cli/pkg/workspace"
)

func chTempDir(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
}

func TestInitProjectStructure(t *testing.T) {
	chTempDir(t)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(WebpenDir, SettingsFile)); err != nil {
		t.Fatalf("settings file not created: %v", err)
	}

	// Running init again keeps the existing settings file.
	settings, _ := ReadSettings()
	settings.Chat.Model = "llama3"
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	settings, _ = ReadSettings()
	if settings.Chat.Model != "llama3" {
		t.Fatal("init overwrote existing settings")
	}
}

func TestReadSettingsDefaultsWithoutProject(t *testing.T) {
	chTempDir(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	defaults := models.DefaultSettings()
	if settings.Chat.Endpoint != defaults.Chat.Endpoint {
		t.Fatalf("endpoint = %q; want default %q", settings.Chat.Endpoint, defaults.Chat.Endpoint)
	}
	if settings.Editor.HistoryLimit != defaults.Editor.HistoryLimit {
		t.Fatalf("history limit = %d; want %d", settings.Editor.HistoryLimit, defaults.Editor.HistoryLimit)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	chTempDir(t)
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	settings := models.DefaultSettings()
	settings.Chat.Endpoint = "http://10.0.0.5:11434"
	settings.Chat.Temperature = 0.2
	settings.Preview.AutoRefresh = false

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	loaded, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if loaded.Chat.Endpoint != "http://10.0.0.5:11434" {
		t.Fatalf("endpoint = %q", loaded.Chat.Endpoint)
	}
	if loaded.Chat.Temperature != 0.2 {
		t.Fatalf("temperature = %v", loaded.Chat.Temperature)
	}
	if loaded.Preview.AutoRefresh {
		t.Fatal("auto_refresh did not round-trip")
	}
}

func TestWritePreviewFile(t *testing.T) {
	chTempDir(t)

	doc := "<!DOCTYPE html>\n<html></html>\n"
	if err := WritePreviewFile(doc, ""); err != nil {
		t.Fatalf("WritePreviewFile failed: %v", err)
	}

	content, err := os.ReadFile(DefaultPreviewFile)
	if err != nil {
		t.Fatalf("preview file missing: %v", err)
	}
	if string(content) != doc {
		t.Fatalf("preview content = %q", content)
	}
}

func TestReadFragmentSizeCap(t *testing.T) {
	chTempDir(t)

	big := strings.Repeat("x", workspace.MaxImportSize+1)
	if err := os.WriteFile("big.css", []byte(big), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, err := ReadFragment("big.css")
	if _, ok := err.(*workspace.SizeLimitError); !ok {
		t.Fatalf("oversized fragment error = %v; want *workspace.SizeLimitError", err)
	}

	if err := os.WriteFile("ok.css", []byte("p{}"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	content, err := ReadFragment("ok.css")
	if err != nil {
		t.Fatalf("ReadFragment failed: %v", err)
	}
	if content != "p{}" {
		t.Fatalf("fragment content = %q", content)
	}
}

func TestExportNode(t *testing.T) {
	chTempDir(t)

	tree := workspace.New()
	node, _ := tree.Create("out.js", "", "let x = 1")

	if err := ExportNode(node, ""); err != nil {
		t.Fatalf("ExportNode failed: %v", err)
	}
	content, err := os.ReadFile("out.js")
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	if string(content) != "let x = 1" {
		t.Fatalf("exported content = %q", content)
	}

	folder, _ := tree.CreateFolder("dir", "")
	if err := ExportNode(folder, ""); err == nil {
		t.Fatal("exporting a folder should fail")
	}
}
