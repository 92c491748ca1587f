package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orbitals/animator"
	"orbitals/config"
)

func TestFlagsApply(t *testing.T) {
	policy := animator.Snap
	f := flags{
		policy: &policy,
		model:  "other.stl",
		width:  640,
		ar:     "4:3",
		set:    map[string]bool{"width": true},
	}
	cfg := config.Default()
	f.Apply(&cfg)

	assert.Equal(t, animator.Snap, cfg.Controller.Policy)
	assert.Equal(t, "other.stl", cfg.Model.Path)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, config.Default().Window.AspectRatio, cfg.Window.AspectRatio, "unset flags keep the file value")
}

func TestFlagsApplyWithoutPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Controller.Policy = animator.ExponentialFollow
	flags{}.Apply(&cfg)
	assert.Equal(t, animator.ExponentialFollow, cfg.Controller.Policy)
}
