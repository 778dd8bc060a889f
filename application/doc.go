/*
Package application holds the pieces shared by the executables built on
the authenticated skip list.

Config

AppConfig abstracts the encoding of an executable's configuration file.
CommonConfig carries the values every executable has: the file path,
the logger configuration and the loader for the file's encoding.
TOML is the only encoding so far.

Logger

Logger wraps a zap.SugaredLogger. It writes to stderr and optionally
to a file, at debug level in development and info level in production.

Keys

LoadSigningKey and LoadSigningPubKey read the raw ed25519 keys that
sign and verify published roots.
*/
package application
