package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve XDG base directories"
	MsgListShort       = "Print the resolved base directories"
	MsgListLong        = "List resolves every base directory and prints the result in the chosen format."
	MsgGetShort        = "Print a single resolved directory"
	MsgGetLong         = "Get resolves one base directory by name and prints the bare path, suitable for command substitution in scripts."
	MsgDocShort        = "Show the base directory reference"
	MsgDocLong         = "Doc renders a reference of the XDG base directories, their override variables, defaults and application scoping."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat  = "Output format: auto, term, text, env, json, yaml, toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)

	//go:embed msgs/get-example.txt
	msgGetExampleRaw string
	MsgGetExample    = strings.TrimSpace(msgGetExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
