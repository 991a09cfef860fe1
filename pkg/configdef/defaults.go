package configdef

// Defaults are the values a run starts from before the config file and
// command line flags are applied.
func Defaults() Values {
	return Values{
		OutputDir:    "output/",
		Cropbox:      Cropbox{W: 100, H: 40, X: 71, Y: 1310},
		SampleRate:   1,
		Threshold:    0.25,
		FFmpegPath:   "ffmpeg",
		VideoBackend: BackendFFmpeg,
		ImageWriter:  WriterJPEG,
		JPEGQuality:  75,
		MockFrames:   60,
	}
}
