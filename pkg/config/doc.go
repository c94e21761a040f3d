// Package config loads clipfix settings. Values come from embedded defaults,
// then CLIPFIX_* environment variables, then explicitly set command line
// flags, each layer overriding the previous one. None of them touch the
// rewrite rules, which are fixed at build time.
package config
