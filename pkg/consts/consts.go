package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the configuration file looked up in the working
	// directory
	DefaultConfigFile = "commentary.yaml"

	// DefaultSuppressMarker is the line comment prefix that suppresses
	// diagnostics when no marker is configured
	DefaultSuppressMarker = "NOPMD"

	// DefaultVisitOrder is the traversal order used when none is configured
	DefaultVisitOrder = "preorder"

	// DefaultExtension selects the source files analysed in directories
	DefaultExtension = ".cls"
)
