package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Load
	DisplayName string // Human readable name
	Description string
	UsesMesh    bool // Whether LoadOptions.MeshPath is honoured
}

// LoadOptions are the inputs a scene constructor may use
type LoadOptions struct {
	MeshPath string // OBJ or PLY file for mesh scenes
}

type sceneEntry struct {
	info  SceneInfo
	build func(opts LoadOptions) (*Scene, error)
}

var registry = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Three spheres, a triangle and a checkered ground plane",
		},
		build: func(LoadOptions) (*Scene, error) { return NewDefaultScene(), nil },
	},
	"mirrors": {
		info: SceneInfo{
			ID:          "mirrors",
			DisplayName: "Hall of Mirrors",
			Description: "Two facing mirror walls with colored spheres between them",
		},
		build: func(LoadOptions) (*Scene, error) { return NewMirrorsScene(), nil },
	},
	"mesh": {
		info: SceneInfo{
			ID:          "mesh",
			DisplayName: "Triangle Mesh",
			Description: "OBJ or PLY mesh (built-in octahedron by default) on a checkered ground",
			UsesMesh:    true,
		},
		build: func(opts LoadOptions) (*Scene, error) { return NewMeshScene(opts.MeshPath) },
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, entry := range registry {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// Load builds and validates the named scene
func Load(id string, opts LoadOptions) (*Scene, error) {
	entry, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}

	s, err := entry.build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", id, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", id, err)
	}

	return s, nil
}
