package pipeline_behavior

import "github.com/vk/glyphforge/internal/config"

func testFont() config.Model {
	return config.Model{
		Family:      "Test",
		ColorFormat: "glyf_colr_1",
		Output:      "font",
		Upem:        1024,
		Diffs:       config.Diffs{Resolution: 256},
	}
}
