package version

// Version is stamped into --version output and usage text.
const Version = "0.2.0"
