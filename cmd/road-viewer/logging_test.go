package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		existing int64 // size of a pre-existing log, -1 for none
		wantFile bool
		rotated  bool
	}{
		{name: "release discards", debug: false, existing: -1},
		{name: "debug creates file", debug: true, existing: -1, wantFile: true},
		{name: "debug appends small log", debug: true, existing: 128, wantFile: true},
		{name: "debug rotates oversized log", debug: true, existing: maxLogSize + 1, wantFile: true, rotated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Cleanup(func() { log.SetOutput(io.Discard) })

			logPath := filepath.Join(logDir, logFileName)
			if tt.existing >= 0 {
				if err := os.MkdirAll(logDir, 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(logPath, make([]byte, tt.existing), 0644); err != nil {
					t.Fatal(err)
				}
			}

			f := setupLogging(tt.debug)
			if f != nil {
				defer f.Close()
			}
			if (f != nil) != tt.wantFile {
				t.Fatalf("setupLogging(%v) file = %v, want file %v", tt.debug, f, tt.wantFile)
			}

			out := log.Writer()
			if !tt.wantFile {
				if out != io.Discard {
					t.Errorf("log output = %v, want io.Discard", out)
				}
				return
			}
			if out == os.Stdout || out == os.Stderr {
				t.Error("log output must stay off the terminal")
			}

			log.Println("crossroad resolved")
			info, err := os.Stat(logPath)
			if err != nil {
				t.Fatalf("stat %s: %v", logPath, err)
			}
			if info.Size() == 0 {
				t.Error("log file is empty after a write")
			}
			if tt.existing > 0 && !tt.rotated && info.Size() <= tt.existing {
				t.Errorf("log size %d, want appended past %d", info.Size(), tt.existing)
			}

			entries, err := os.ReadDir(logDir)
			if err != nil {
				t.Fatal(err)
			}
			var archived []string
			for _, e := range entries {
				if e.Name() != logFileName && strings.HasPrefix(e.Name(), "road-viewer-") {
					archived = append(archived, e.Name())
				}
			}
			if tt.rotated {
				if len(archived) != 1 {
					t.Fatalf("archived logs = %v, want one", archived)
				}
				if info.Size() > maxLogSize {
					t.Errorf("fresh log is %d bytes", info.Size())
				}
			} else if len(archived) != 0 {
				t.Errorf("unexpected archived logs %v", archived)
			}
		})
	}
}
