package main

import (
	"fmt"
	"os"
)

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	return err == nil, err
}

func loadShaderSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader file: %w", err)
	}
	return string(data) + "\x00", nil
}

// loadShaders returns the scene's vertex and fragment shader sources. An
// empty frag selects the built-in fragment shader.
func loadShaders(frag string) (string, string, error) {
	if frag == "" {
		return sceneVertexShader + "\x00", sceneFragmentShader + "\x00", nil
	}
	fragment, err := loadShaderSource(frag)
	if err != nil {
		return "", "", err
	}
	return sceneVertexShader + "\x00", fragment, nil
}
