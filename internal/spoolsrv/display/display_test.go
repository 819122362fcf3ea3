package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMaterial(t *testing.T) {
	tests := []struct {
		material string
		modifier string
		want     string
	}{
		{"pla", "", "PLA"},
		{"pla", "basic", "PLA"},
		{"pla", "carbon-fiber", "PLA Carbon Fiber"},
		{"petg", "hf", "PETG High Flow"},
		{"tpu", "95a-hf", "TPU 95A HF"},
		{"pla", "silk-multi-color", "PLA Silk Multi-Color"},
		{"nylon", "glass-fiber", "Nylon Glass Fiber"},
		// unknown material upper-cases, unknown modifier passes through
		{"pva", "", "PVA"},
		{"pla", "recycled", "PLA recycled"},
	}

	for _, tt := range tests {
		got := FormatMaterial(tt.material, tt.modifier)
		assert.Equal(t, tt.want, got, "%s/%s", tt.material, tt.modifier)
	}
}

func TestMaterialDisplay(t *testing.T) {
	tests := []struct {
		material string
		modifier string
		want     string
	}{
		{"pla", "", "PLA"},
		{"pla", "basic", "PLA"},
		{"pla", "carbon-fiber", "PLA-CF"},
		{"petg", "hf", "PETG-HF"},
		{"pla", "silk-multi-color", "PLA-Silk MC"},
		{"pla", "glow-in-dark", "PLA-Glow"},
		{"tpu", "for-ams", "TPU-AMS"},
		{"pva", "", "PVA"},
		{"pla", "recycled", "PLA-recycled"},
	}

	for _, tt := range tests {
		got := MaterialDisplay(tt.material, tt.modifier)
		assert.Equal(t, tt.want, got, "%s/%s", tt.material, tt.modifier)
	}
}
