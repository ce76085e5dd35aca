package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	"github.com/t83714/ts-module-alias-transformer/internal/controller"
	"github.com/t83714/ts-module-alias-transformer/internal/domain"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

var manifestAdapter adapter.ManifestAdapter
var fsAdapter adapter.FSAdapter
var workflow domain.Workflow

var mappingConfigPathFlag string
var extensionsFlag []string
var dryRunFlag bool
var quietFlag bool
var verboseFlag bool

const rootLongDescription = `Rewrite module import paths inside compiled TypeScript build output
(.js files and .d.ts declaration files), applying the static alias mapping
stored under the "` + adapter.MappingKey + `" key of a JSON manifest
(by default ./package.json), e.g.:

  { "` + adapter.MappingKey + `": { "@app": "./internal" } }

With a directory source the destination mirrors the source subtree; with a
single-file source the output lands in (or at) the destination. Omitting the
destination rewrites files in place.`

// rootCmd represents the base command; the transform is the root operation.
// It is constructed in init so the viper defaults from config.go (whose init
// runs first) feed the flag defaults.
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ts-module-alias-transformer [flags] <src> [dst]",
		Short: "Rewrite aliased module paths in TypeScript build output",
		Long:  rootLongDescription,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogger(viper.GetBool(verboseFlagName))

			runArgs := domain.RunArgs{
				Source:            m.Path(args[0]),
				MappingConfigPath: m.Path(viper.GetString(mappingConfigKey)),
				Extensions:        viper.GetStringSlice(extensionsKey),
				DryRun:            dryRunFlag,
				Quiet:             viper.GetBool(quietFlagName),
				Verbose:           viper.GetBool(verboseFlagName),
			}
			if len(args) == 2 {
				runArgs.Dest = m.Path(args[1])
			}

			_, err := workflow.Run(cmd.Context(), runArgs)

			return err
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func init() {
	rootCmd = newRootCmd()

	ui := controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))

	// Initialize shared dependencies.
	manifestAdapter = adapter.NewLocalManifestAdapter()
	fsAdapter = adapter.NewLocalFSAdapter()
	workflow = domain.NewWorkflow(
		manifestAdapter,
		fsAdapter,
		domain.NewResolver(fsAdapter),
		domain.NewRewriter(),
		domain.NewMaterializer(fsAdapter),
		ui,
	)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&mappingConfigPathFlag, mappingConfigFlagName, "p",
		viper.GetString(mappingConfigKey),
		"location of the JSON manifest carrying the alias mapping",
	)
	bindFlagToConfig(cmd.Flags().Lookup(mappingConfigFlagName), mappingConfigKey)

	cmd.Flags().StringSliceVarP(
		&extensionsFlag, extensionsFlagName, "e",
		viper.GetStringSlice(extensionsKey),
		"file extensions to process when the source is a directory",
	)
	bindFlagToConfig(cmd.Flags().Lookup(extensionsFlagName), extensionsKey)

	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "report and diff what would change without writing anything")

	cmd.Flags().BoolVarP(&quietFlag, quietFlagName, "q", false, "suppress per-file output")
	bindFlagToConfig(cmd.Flags().Lookup(quietFlagName), quietFlagName)

	cmd.Flags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "print every processed file and a final outcome table")
	bindFlagToConfig(cmd.Flags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
