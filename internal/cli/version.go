package cli

// Version is the ccperms version, set at build time via ldflags.
var Version = "dev"
