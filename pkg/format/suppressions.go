package format

import "github.com/pseudomuto/commentary/pkg/comments"

// FileSuppressions is the YAML shape of one file's suppression map.
type FileSuppressions struct {
	File         string                  `yaml:"file"`
	Suppressions comments.SuppressionMap `yaml:"suppressions"`
}
