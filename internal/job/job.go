package job

// Job describes a multi-pass cleaning run: each pass removes one colour
// with its own threshold and mode, applied to every input image in
// order.
type Job struct {
	Version string `yaml:"version"`
	Passes  []Pass `yaml:"passes"`
}

// Pass is a single colour-removal step.
type Pass struct {
	Colour    string `yaml:"colour"`    // "R,G,B"
	Threshold int    `yaml:"threshold"` // Minimum region size to remove
	Mode      string `yaml:"mode"`      // erase, extract or crop (default erase)
}
