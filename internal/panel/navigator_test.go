package panel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenReplacesActivePanel(t *testing.T) {
	n := NewNavigator()

	n.Open(Tariff, nil)
	n.Open(BalanceTopUp, nil) // без Close — стека нет

	active, step, _ := n.State()
	require.Equal(t, BalanceTopUp, active)
	require.Equal(t, StepForm, step)
}

func TestCloseResetsEverything(t *testing.T) {
	n := NewNavigator()
	n.Open(Analysis, map[string]string{"item": "a-1"})
	n.Advance()

	n.Close()

	active, step, payload := n.State()
	require.Equal(t, None, active)
	require.Equal(t, StepForm, step)
	require.Nil(t, payload)
}

func TestAdvanceWalksAnalysisSteps(t *testing.T) {
	n := NewNavigator()
	n.Open(Analysis, nil)

	want := []Step{StepDetails, StepModal, StepResults}
	for _, expected := range want {
		n.Advance()
		_, step, _ := n.State()
		require.Equal(t, expected, step)
	}

	// на последнем шаге Advance ничего не меняет
	n.Advance()
	_, step, _ := n.State()
	require.Equal(t, StepResults, step)
}

func TestDescriptionEndsWithProcessing(t *testing.T) {
	n := NewNavigator()
	n.Open(Description, nil)
	for i := 0; i < 5; i++ {
		n.Advance()
	}
	_, step, _ := n.State()
	require.Equal(t, StepProcessing, step)
}

func TestAdvanceNoopWithoutSteps(t *testing.T) {
	n := NewNavigator()
	n.Open(FAQ, nil)
	n.Advance()
	_, step, _ := n.State()
	require.Equal(t, StepForm, step)
}

func TestOpenResetsStepOfPreviousPanel(t *testing.T) {
	n := NewNavigator()
	n.Open(Analysis, nil)
	n.Advance()
	n.Advance()

	n.Open(Description, nil)
	active, step, _ := n.State()
	require.Equal(t, Description, active)
	require.Equal(t, StepForm, step)
}

func TestParseRoundTrip(t *testing.T) {
	for p, name := range panelNames {
		if p == None {
			continue
		}
		parsed, err := Parse(name)
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}
}

func TestParseRejectsUnknownAndNone(t *testing.T) {
	_, err := Parse("settings-v2")
	require.Error(t, err)
	_, err = Parse("none")
	require.Error(t, err)
}
