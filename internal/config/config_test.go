package config

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantErr    string
		wantFormat string
		wantExtra  []string
	}{
		{
			name:       "minimal valid config",
			data:       "version: 1\n",
			wantFormat: "detailed",
		},
		{
			name:       "explicit format",
			data:       "version: 1\ndefault_format: json\n",
			wantFormat: "json",
		},
		{
			name:       "extra env vars",
			data:       "version: 1\nextra_env:\n  - DEVELOPER_DIR_OVERRIDE\n  - LANG\n",
			wantFormat: "detailed",
			wantExtra:  []string{"DEVELOPER_DIR_OVERRIDE", "LANG"},
		},
		{
			name:    "unsupported version",
			data:    "version: 2\n",
			wantErr: "unsupported config version",
		},
		{
			name:    "unknown format",
			data:    "version: 1\ndefault_format: xml\n",
			wantErr: "unsupported default_format",
		},
		{
			name:    "malformed yaml",
			data:    "version: [1\n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Parse() error = %v, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.DefaultFormat != tt.wantFormat {
				t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, tt.wantFormat)
			}
			if len(cfg.ExtraEnv) != len(tt.wantExtra) {
				t.Fatalf("ExtraEnv = %v, want %v", cfg.ExtraEnv, tt.wantExtra)
			}
			for i := range tt.wantExtra {
				if cfg.ExtraEnv[i] != tt.wantExtra[i] {
					t.Errorf("ExtraEnv[%d] = %q, want %q", i, cfg.ExtraEnv[i], tt.wantExtra[i])
				}
			}
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.DefaultFormat != "detailed" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "detailed")
	}
}
