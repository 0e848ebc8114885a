package models

// AppBuildInfo describes the running server build. Served by the version
// endpoint so operators and clients can verify deployed versions.
type AppBuildInfo struct {
	// Version is the semantic version of the running server (e.g. "1.2.0").
	Version string `json:"version"`
}
