//go:build debug

package digest

// Default is the process-wide hasher variant consulted by New. Debug builds
// (built with `-tags debug`) use SHA-256, matching spec test vectors that
// are SHA-256-specific.
const Default = SHA256
