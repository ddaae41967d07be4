package pylint_test

import (
	"pylintd/pkg/domain"
	"pylintd/pkg/pylint"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleOutput = `************* Module main
main.py:1:0: C0114: Missing module docstring (missing-module-docstring)
main.py:1:0: C0116: Missing function or method docstring (missing-function-docstring)
main.py:3:11: E0602: Undefined variable 'y' (undefined-variable)
main.py:4:4: W0612: Unused variable 'z' (unused-variable)

------------------------------------------------------------------
Your code has been rated at 2.50/10 (previous run: 10.00/10, -7.50)

`

func TestParse_MessagesAndScore(t *testing.T) {
	r := pylint.Parse(sampleOutput)

	require.Equal(t, sampleOutput, r.Output)
	require.Len(t, r.Messages, 4)

	require.Equal(t, domain.Message{
		Path:     "main.py",
		Line:     3,
		Column:   11,
		ID:       "E0602",
		Symbol:   "undefined-variable",
		Category: domain.CategoryError,
		Text:     "Undefined variable 'y'",
	}, r.Messages[2])
	require.Equal(t, domain.CategoryConvention, r.Messages[0].Category)
	require.Equal(t, domain.CategoryWarning, r.Messages[3].Category)

	require.NotNil(t, r.Score)
	require.InDelta(t, 2.5, *r.Score, 1e-9)
	require.NotNil(t, r.PreviousScore)
	require.InDelta(t, 10.0, *r.PreviousScore, 1e-9)
	require.Equal(t, 1, r.ErrorCount())
}

func TestParse_SyntaxError(t *testing.T) {
	out := "************* Module main\n" +
		"main.py:2:1: E0001: Parsing failed: 'expected an indented block after function definition on line 1 " +
		"(main, line 2)' (syntax-error)\n"

	r := pylint.Parse(out)
	require.Len(t, r.Messages, 1)
	require.Equal(t, "syntax-error", r.Messages[0].Symbol)
	require.Equal(t, "E0001", r.Messages[0].ID)
	require.Contains(t, r.Messages[0].Text, "expected an indented block")
	require.Contains(t, r.Messages[0].Text, "(main, line 2)'")
	require.Nil(t, r.Score)
}

func TestParse_EmptyAndPerfect(t *testing.T) {
	r := pylint.Parse("")
	require.Empty(t, r.Messages)
	require.NotNil(t, r.Messages)
	require.Nil(t, r.Score)

	r = pylint.Parse("\n--------------------------------------------------------------------\n" +
		"Your code has been rated at 10.00/10\n")
	require.Empty(t, r.Messages)
	require.NotNil(t, r.Score)
	require.InDelta(t, 10.0, *r.Score, 1e-9)
	require.Nil(t, r.PreviousScore)
}

func TestParse_NegativeScore(t *testing.T) {
	r := pylint.Parse("Your code has been rated at -5.00/10\n")
	require.NotNil(t, r.Score)
	require.InDelta(t, -5.0, *r.Score, 1e-9)
}

func TestParse_MessageWithoutSymbol(t *testing.T) {
	r := pylint.Parse("pkg/mod.py:10:2: R0913: Too many arguments (7/5)\n")
	require.Len(t, r.Messages, 1)
	require.Equal(t, "", r.Messages[0].Symbol)
	require.Equal(t, "Too many arguments (7/5)", r.Messages[0].Text)
	require.Equal(t, "pkg/mod.py", r.Messages[0].Path)
}
