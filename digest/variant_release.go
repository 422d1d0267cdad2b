//go:build !debug

package digest

// Default is the process-wide hasher variant consulted by New. Release
// builds (the default, absent a `debug` build tag) use BLAKE3.
const Default = Blake3
