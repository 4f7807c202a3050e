package fontdata

import (
	"testing"

	"github.com/retroenv/chip8opt/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		font    options.Font
		bigSize int // 0 for fonts without a large digit set
	}{
		{name: "octo", font: options.FontOcto, bigSize: 16 * 10},
		{name: "vip", font: options.FontVIP},
		{name: "dream6800", font: options.FontDream6800},
		{name: "eti660", font: options.FontETI660},
		{name: "schip", font: options.FontSCHIP, bigSize: 10 * 10},
		{name: "fish", font: options.FontFish, bigSize: 16 * 10},
		{name: "akouz1", font: options.FontAKouZ1, bigSize: 16 * 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			small, big := Get(tt.font)
			assert.Len(t, small[:], SmallFontSize)

			if tt.bigSize == 0 {
				assert.Nil(t, big)
			} else {
				assert.Len(t, big, tt.bigSize)
			}
		})
	}
}

func TestGetUnknownFontFallsBackToOcto(t *testing.T) {
	octoSmall, octoBig := Get(options.FontOcto)
	small, big := Get(options.Font(99))
	assert.Equal(t, octoSmall, small)
	assert.Equal(t, octoBig, big)
}

func TestFontsDiffer(t *testing.T) {
	octo, _ := Get(options.FontOcto)
	vip, _ := Get(options.FontVIP)
	assert.True(t, octo != vip)
}
