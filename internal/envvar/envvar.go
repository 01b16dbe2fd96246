package envvar

const (
	// SdkpathEnv is the environment variable used to determine the environment
	SdkpathEnv = "SDKPATH_ENV"

	// SdkpathConfig is the environment variable used to override the config file path
	SdkpathConfig = "SDKPATH_CONFIG"

	// DeveloperDir is the environment variable Xcode tools read to select the active developer directory
	DeveloperDir = "DEVELOPER_DIR"

	// SdkRoot is the environment variable Xcode tools read to select the active SDK
	SdkRoot = "SDKROOT"
)
