package export

import (
	"testing"
)

func TestNewExporter(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantExt string
		wantErr bool
	}{
		{
			name:    "jsonl format",
			format:  "jsonl",
			wantExt: "jsonl",
			wantErr: false,
		},
		{
			name:    "markdown format",
			format:  "md",
			wantExt: "md",
			wantErr: false,
		},
		{
			name:    "markdown format long",
			format:  "markdown",
			wantExt: "md",
			wantErr: false,
		},
		{
			name:    "yaml format",
			format:  "yaml",
			wantExt: "yaml",
			wantErr: false,
		},
		{
			name:    "json format",
			format:  "json",
			wantExt: "json",
			wantErr: false,
		},
		{
			name:    "unsupported format",
			format:  "xml",
			wantErr: true,
		},
		{
			name:    "empty format",
			format:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewExporter() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				if exporter != nil {
					t.Errorf("NewExporter() returned exporter %T, want nil", exporter)
				}
				return
			}

			if exporter == nil {
				t.Fatal("NewExporter() returned nil exporter")
			}
			if got := exporter.Extension(); got != tt.wantExt {
				t.Errorf("Exporter.Extension() = %v, want %v", got, tt.wantExt)
			}
		})
	}
}
