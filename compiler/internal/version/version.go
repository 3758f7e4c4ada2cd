package version

// Version is overridden at link time:
//
//	go build -ldflags "-X github.com/picolang/pico/compiler/internal/version.Version=v0.3.0"
var Version = "dev"

// String returns the tool name and version.
func String() string { return "picoc " + Version }
