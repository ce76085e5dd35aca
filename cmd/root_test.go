package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/t83714/ts-module-alias-transformer/internal/adapter"
	"github.com/t83714/ts-module-alias-transformer/internal/controller"
	"github.com/t83714/ts-module-alias-transformer/internal/domain"
	domainmocks "github.com/t83714/ts-module-alias-transformer/internal/domain/mocks"
	m "github.com/t83714/ts-module-alias-transformer/internal/model"
)

type cobraTestHarness struct {
	cmd *cobra.Command
	out *bytes.Buffer
}

func newTestRootCmd() *cobraTestHarness {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return &cobraTestHarness{cmd: cmd, out: out}
}

func TestRootCmd_ForwardsSourceAndDest(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	harness := newTestRootCmd()

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Source == m.Path("./build") &&
			args.Dest == m.Path("./out") &&
			args.MappingConfigPath == m.Path("./package.json") &&
			!args.DryRun
	})).Return(m.RunSummary{Compiled: 1}, nil)

	harness.cmd.SetArgs([]string{"./build", "./out"})
	err := harness.cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_DefaultsToInPlace(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	harness := newTestRootCmd()

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Source == m.Path("./build") && args.Dest == m.Path("")
	})).Return(m.RunSummary{}, nil)

	harness.cmd.SetArgs([]string{"./build"})
	err := harness.cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_MappingConfigPathFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	harness := newTestRootCmd()

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.MappingConfigPath == m.Path("./configs/manifest.json")
	})).Return(m.RunSummary{}, nil)

	harness.cmd.SetArgs([]string{"-p", "./configs/manifest.json", "./build"})
	err := harness.cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_DryRunAndExtensionsFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	harness := newTestRootCmd()

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.DryRun &&
			len(args.Extensions) == 2 &&
			args.Extensions[0] == "js" &&
			args.Extensions[1] == "mjs"
	})).Return(m.RunSummary{}, nil)

	harness.cmd.SetArgs([]string{"--dry-run", "--extensions", "js,mjs", "./build"})
	err := harness.cmd.Execute()
	require.NoError(t, err)
}

func TestRootCmd_RequiresSourceArgument(t *testing.T) {
	harness := newTestRootCmd()

	harness.cmd.SetArgs([]string{})
	err := harness.cmd.Execute()
	assert.Error(t, err)
}

func TestRootCmd_RejectsTooManyArguments(t *testing.T) {
	harness := newTestRootCmd()

	harness.cmd.SetArgs([]string{"a", "b", "c"})
	err := harness.cmd.Execute()
	assert.Error(t, err)
}

func TestRootCmd_EndToEnd(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "build")
	dstDir := filepath.Join(root, "out")

	require.NoError(t, os.MkdirAll(srcDir, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(srcDir, "index.js"),
		[]byte(`const thing = require("@app/thing");`),
		0o644,
	))

	manifestPath := filepath.Join(root, "package.json")
	require.NoError(t, os.WriteFile(
		manifestPath,
		[]byte(`{"_moduleMappings": {"@app": "./internal"}}`),
		0o644,
	))

	// Keep the rotating log out of the repository tree during tests.
	t.Setenv("TSMAT_LOG_FILENAME", filepath.Join(root, "tsmat.log"))

	harness := newTestRootCmd()

	fs := adapter.NewLocalFSAdapter()
	realWorkflow := domain.NewWorkflow(
		adapter.NewLocalManifestAdapter(),
		fs,
		domain.NewResolver(fs),
		domain.NewRewriter(),
		domain.NewMaterializer(fs),
		controller.NewUI(harness.cmd, false),
	)

	originalWorkflow := workflow
	workflow = realWorkflow
	defer func() { workflow = originalWorkflow }()

	harness.cmd.SetArgs([]string{"-p", manifestPath, srcDir, dstDir})
	err := harness.cmd.Execute()
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dstDir, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, `const thing = require("./internal/thing");`, string(got))
	assert.Contains(t, harness.out.String(), "Successfully compiled 1 files.")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "ts-module-alias-transformer [flags] <src> [dst]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup(mappingConfigFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(extensionsFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(dryRunFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(quietFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(verboseFlagName))
}
