package config

type Config struct {
	InputPath    string
	OutputDir    string
	Colour       string
	Threshold    int
	Mode         string
	Format       string
	Workers      int
	DPI          int
	JobFile      string
	ShowStats    bool
	BuildVersion string
}
