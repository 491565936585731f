package domain

// Config represents the minimal seqtools configuration loaded from
// config.yaml. Every field has a default; a missing config file is not an
// error.
type Config struct {
	// FillQuality is the neutral quality character used when encoding a
	// record that has no quality string as FASTQ.
	FillQuality byte

	// HistogramWidth is the column budget for text histograms.
	HistogramWidth int

	Random RandomDefaults
}

// RandomDefaults seed the `random` command flags.
type RandomDefaults struct {
	Num int
	Len float64
	Std float64
}

// DefaultConfig provides sane defaults if config.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		FillQuality:    'I',
		HistogramWidth: 60,
		Random: RandomDefaults{
			Num: 10,
			Len: 100,
			Std: 0,
		},
	}
}
