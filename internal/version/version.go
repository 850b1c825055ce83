package version

// Version is the pomo release, overridden at build time with
// -ldflags "-X pomo/internal/version.Version=...".
var Version = "0.3.0"
