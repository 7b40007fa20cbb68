package genconfig

// Message constants
const (
	MsgShort   = "Generate a sample configuration file"
	MsgLong    = "Output a commented sample configuration to stdout, or write it to ./schemer.toml with -w.\n\nAn existing file is never overwritten."
	MsgExample = `  schemer gen-config                   # Output to stdout
  schemer gen-config -w                # Write to ./schemer.toml
  schemer gen-config -w -f etc/db.toml # Write to another file`
	MsgFlagWrite = "Write config to a file instead of stdout"
	MsgFlagFile  = "File written with --write"
	MsgErrGen    = "failed to generate config: %w"
)
