package cli_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Starscribers/any-registries/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      bool
		expectedConfig *cli.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "happy path with all flags",
			args: []string{
				"-path", "/test/manifests",
				"--patterns=cmds/**/*.hcl,extra/*.yaml",
				"--run=greet",
				"--env-file=/test/.env",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &cli.Config{
				ManifestPath: "/test/manifests",
				Patterns:     []string{"cmds/**/*.hcl", "extra/*.yaml"},
				RunKey:       "greet",
				EnvFile:      "/test/.env",
				LogFormat:    "json",
				LogLevel:     "debug",
			},
		},
		{
			name: "shorthand flag and defaults",
			args: []string{"-p", "/short/path"},
			expectedConfig: &cli.Config{
				ManifestPath: "/short/path",
				Patterns:     []string{"**/*.hcl", "**/*.yaml", "**/*.yml"},
				LogFormat:    "text",
				LogLevel:     "info",
			},
		},
		{
			name: "positional path and run args",
			args: []string{"-run", "upper", "/positional/path", "some", "words"},
			expectedConfig: &cli.Config{
				ManifestPath: "/positional/path",
				Patterns:     []string{"**/*.hcl", "**/*.yaml", "**/*.yml"},
				RunKey:       "upper",
				RunArgs:      []string{"some", "words"},
				LogFormat:    "text",
				LogLevel:     "info",
			},
		},
		{
			name:       "help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
			},
		},
		{
			name:       "no path prints usage and exits cleanly",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "MANIFEST_PATH")
			},
		},
		{
			name:      "invalid log format",
			args:      []string{"-p", "/x", "--log-format=xml"},
			expectErr: true,
		},
		{
			name:      "invalid log level",
			args:      []string{"-p", "/x", "--log-level=loud"},
			expectErr: true,
		},
		{
			name:      "empty patterns",
			args:      []string{"-p", "/x", "--patterns=, ,"},
			expectErr: true,
		},
		{
			name:      "unknown flag",
			args:      []string{"--definitely-not-a-flag"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var output bytes.Buffer

			cfg, shouldExit, err := cli.Parse(tc.args, &output)

			if tc.expectErr {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
			if tc.checkOutput != nil {
				tc.checkOutput(t, output.String())
			}
		})
	}
}
