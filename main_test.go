package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"default scene", []string{"--scene", "default"}},
		{"mirrors scene", []string{"--scene", "mirrors", "--max-reflections", "2"}},
		{"mesh scene", []string{"--scene", "mesh"}},
		{"specular channel", []string{"--channel", "specular"}},
		{"global lighting", []string{"--lighting", "global", "--indirect-samples", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frames", "frame.png")
			args := append([]string{"raytracer", "render", "--width", "16", "--height", "12", "--out", out}, tt.args...)

			if err := newApp().Run(args); err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			file, err := os.Open(out)
			if err != nil {
				t.Fatalf("Expected output file: %v", err)
			}
			defer file.Close()

			img, err := png.Decode(file)
			if err != nil {
				t.Fatalf("Expected valid PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
				t.Errorf("Expected 16x12 image, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown scene", []string{"--scene", "cornell"}, "unknown scene"},
		{"unknown lighting", []string{"--lighting", "path"}, "unknown lighting mode"},
		{"unknown channel", []string{"--channel", "normals"}, "unknown render channel"},
		{"negative reflections", []string{"--max-reflections", "-1"}, "invalid render parameters"},
		{"zero width", []string{"--width", "0"}, "invalid scene configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.png")
			args := append([]string{"raytracer", "render", "--out", out}, tt.args...)

			err := newApp().Run(args)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
			if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
				t.Errorf("Expected no output file on error")
			}
		})
	}
}

func TestScenesCommand(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"raytracer", "scenes"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, info := range scene.ListScenes() {
		if !strings.Contains(buf.String(), info.ID) {
			t.Errorf("Expected scene %q in listing, got:\n%s", info.ID, buf.String())
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"verbose", []string{"-v", "scenes"}, ""},
		{"very verbose", []string{"-vv", "scenes"}, ""},
		{"log level", []string{"--log-level", "warning", "scenes"}, ""},
		{"unknown log level", []string{"--log-level", "chatty", "scenes"}, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := newApp()
			app.Writer = &buf

			err := app.Run(append([]string{"raytracer"}, tt.args...))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Unexpected error: %v", err)
				}
				if !strings.Contains(buf.String(), "default") {
					t.Errorf("Expected scene listing, got:\n%s", buf.String())
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	app := newApp()
	app.Writer = &buf

	if err := app.Run([]string{"raytracer", "--version"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), app.Version) {
		t.Errorf("Expected version %s in output, got %q", app.Version, buf.String())
	}
}

func TestRenderCommand_DegenerateMeshWarning(t *testing.T) {
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "sliver.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 2 0 0\nv 0 1 0\nf 1 2 3\nf 1 2 4\n"
	if err := os.WriteFile(meshPath, []byte(obj), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	var logs bytes.Buffer
	log.SetSink(&logs)
	defer log.SetSink(os.Stderr)

	args := []string{"raytracer", "render", "--scene", "mesh", "--mesh", meshPath,
		"--width", "8", "--height", "6", "--out", filepath.Join(dir, "frame.png")}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if !strings.Contains(logs.String(), "1 zero-area triangles") {
		t.Errorf("Expected degenerate triangle warning, got:\n%s", logs.String())
	}
}
