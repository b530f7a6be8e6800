package models

// Settings represents the application configuration
type Settings struct {
	Chat    ChatSettings    `yaml:"chat"`
	Editor  EditorSettings  `yaml:"editor"`
	Preview PreviewSettings `yaml:"preview"`
}

// ChatSettings controls the connection to the text-generation endpoint
type ChatSettings struct {
	Endpoint       string  `yaml:"endpoint"`
	Model          string  `yaml:"model"`
	Temperature    float64 `yaml:"temperature"`
	TopP           float64 `yaml:"top_p"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// EditorSettings controls editor preferences
type EditorSettings struct {
	HistoryLimit    int  `yaml:"history_limit"`
	ShowLineNumbers bool `yaml:"show_line_numbers"`
}

// PreviewSettings controls preview output behavior
type PreviewSettings struct {
	AutoRefresh bool   `yaml:"auto_refresh"`
	ExportPath  string `yaml:"export_path"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Chat: ChatSettings{
			Endpoint:       "http://localhost:11434",
			Model:          "",
			Temperature:    0.7,
			TopP:           0.9,
			TimeoutSeconds: 120,
		},
		Editor: EditorSettings{
			HistoryLimit:    50,
			ShowLineNumbers: true,
		},
		Preview: PreviewSettings{
			AutoRefresh: true,
			ExportPath:  "preview.html",
		},
	}
}
