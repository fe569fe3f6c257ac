package version

// Version is the release tag; overridden at build time with
// -ldflags "-X stxscan/internal/version.Version=...".
var Version = "dev"
