package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"alef/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show alef build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(versionPayload{
					Tool:      "alef",
					Version:   version.Version,
					GitCommit: version.GitCommit,
					BuildDate: version.BuildDate,
				})
			case "pretty", "":
				colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
				useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
				_, err := fmt.Fprintln(out, version.Banner(useColor))
				return err
			}
			return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}
