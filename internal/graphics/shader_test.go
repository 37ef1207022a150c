package graphics

import (
	"io/fs"
	"strings"
	"testing"
)

func TestBatchShaderSourcesEmbedded(t *testing.T) {
	for _, path := range []string{BatchVertShader, BatchFragShader} {
		src, err := fs.ReadFile(shaderFS, path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if !strings.HasPrefix(string(src), "#version 410 core") {
			t.Errorf("%s does not target GLSL 410 core", path)
		}
	}

	vert, _ := fs.ReadFile(shaderFS, BatchVertShader)
	for _, want := range []string{"uniform mat4 mvp", "location = 0) in vec4", "location = 1) in vec4"} {
		if !strings.Contains(string(vert), want) {
			t.Errorf("vertex shader missing %q", want)
		}
	}
}
