package gtgraphics

// Version is the library release, reported by the CLI.
const Version = "0.2.0"
