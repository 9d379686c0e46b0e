package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// ErrUnsupportedVersion is returned by Init for contexts older than
// OpenGL 3.3.
var ErrUnsupportedVersion = errors.New("opengl: unsupported context version")

var minVersion = semver.MustParse("3.3")

// parseVersion extracts the numeric version from a GL_VERSION string such
// as "4.6.0 NVIDIA 535.54" or "4.1 Metal - 76.3".
func parseVersion(s string) (*semver.Version, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty GL_VERSION", ErrUnsupportedVersion)
	}
	v, err := semver.NewVersion(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, s, err)
	}
	return v, nil
}

func checkVersion(s string) error {
	v, err := parseVersion(s)
	if err != nil {
		return err
	}
	if v.LessThan(minVersion) {
		return fmt.Errorf("%w: %s, need %s", ErrUnsupportedVersion, v, minVersion)
	}
	return nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}

// createShaderProgram compiles and links a program. On failure nothing is
// left allocated.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertex, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragment)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00"))
	}
	return program, nil
}
