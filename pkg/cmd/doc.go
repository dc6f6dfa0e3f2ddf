// Package cmd provides CLI commands for the commentary tool.
//
// # Available Commands
//
//   - tree: Print the syntax tree with documentation comments attached
//   - suppressions: Print suppression directives as YAML
//   - commented: List declarations containing ordinary comments
//
// Every command takes a single path. Directories are walked recursively and
// the files whose extension is listed in commentary.yaml are analysed in
// lexicographical order.
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the application through the fx value group "commands" (see Module).
//
// # Global Options
//
//   - --verbose, -v: Log debug diagnostics
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	commentary tree classes/Greeter.cls
//	commentary suppressions --marker NOSONAR classes/
//	commentary commented classes/
package cmd
