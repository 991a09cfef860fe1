package extractor

func OverrideEnsureOutputDir(replacement func(string) error) func() {
	ref := ensureOutputDir
	ensureOutputDir = replacement
	return func() { ensureOutputDir = ref }
}

func OverrideWriteMetrics(replacement func(string) error) func() {
	ref := writeMetrics
	writeMetrics = replacement
	return func() { writeMetrics = ref }
}
