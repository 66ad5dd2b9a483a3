// Package cmd implements the color-mcp command line: the MCP server and
// one-shot color commands that print JSON. Flags, a yaml config file and
// COLORMCP_* environment variables are merged through viper.
package cmd
