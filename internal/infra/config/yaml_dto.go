package config

type YAMLConfig struct {
	FillQuality    string     `yaml:"fill_quality"`
	HistogramWidth *int       `yaml:"histogram_width"`
	Random         YAMLRandom `yaml:"random"`
}

type YAMLRandom struct {
	Num *int     `yaml:"num"`
	Len *float64 `yaml:"len"`
	Std *float64 `yaml:"std"`
}
