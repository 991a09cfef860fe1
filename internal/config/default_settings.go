package config

const (
	vendorName     = "sreenikethani"
	appName        = "gmeetstamp"
	configFileName = "config.json"

	configPathEnv = "GMEETSTAMP_CONFIG"
)
