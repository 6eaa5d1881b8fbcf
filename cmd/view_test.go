package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crosswire.dev/pkg/crosswire/internal/domain"
	m "crosswire.dev/pkg/crosswire/internal/model"
)

func TestViewCmd_UsesRootOutputFlagByDefault(t *testing.T) {
	mockWorkflow := newMockedRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(defaultReportsDir)
	})).Return(nil).Once()

	require.NoError(t, executeRoot("view"))
}

func TestViewCmd_RootOutputFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := newMockedRoot(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path("./reports-dir")
	})).Return(nil).Once()

	require.NoError(t, executeRoot("view", "--output", "./reports-dir"))
}

func TestViewCmd_PositionalArgsAreRejected(t *testing.T) {
	newMockedRoot(t)

	require.Error(t, executeRoot("view", "./custom-reports"))
}
