package basic_test

import (
	"bytes"
	"testing"

	"github.com/rshaporenkov/gobasic/pkg/basic"
	"github.com/stretchr/testify/require"
)

// Scenarios from spec.md §8's end-to-end table.
func TestRunEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"arithmetic precedence", "1 + 2 * 3", "7"},
		{"var then use", "var x = 10\nx + 5", "15"},
		{"recursive closure factorial", "var f = func(n) -> if n <= 1 then 1 else n * f(n - 1)\nf(5)", "120"},
		{"for loop accumulates", "var s = 0\nfor i = 1 to 6 then var s = s + i\ns", "15"},
		{"string concatenation", `"hello" + " " + "world"`, "hello world"},
		{"list plus scalar appends", "[1, 2] + 3", "[1, 2, 3]"},
		{"negative power precedence", "-2 ^ 3", "-8"},
		{"power binds tighter than mul", "2 * 3 ^ 2", "18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := basic.New(basic.WithOutput(&bytes.Buffer{}))
			value, err := engine.Run("<test>", tt.source)
			require.Nil(t, err, "unexpected error: %v", err)
			require.NotNil(t, value)
			require.Equal(t, tt.want, value.Render())
		})
	}
}

func TestRunDivisionByZeroIsRuntimeError(t *testing.T) {
	engine := basic.New()
	_, err := engine.Run("<test>", "5 / 0")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Division by zero")
}

func TestRunUndefinedVariableIsRuntimeError(t *testing.T) {
	engine := basic.New()
	_, err := engine.Run("<test>", "undef")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "'undef' is not defined")
}

func TestRunExactlyOneOfValueOrErrorIsNonNil(t *testing.T) {
	engine := basic.New()

	value, err := engine.Run("<test>", "1 + 1")
	require.NotNil(t, value)
	require.Nil(t, err)

	value, err = engine.Run("<test>", "1 +")
	require.Nil(t, value)
	require.NotNil(t, err)
}

func TestForLoopBoundaryIterationCounts(t *testing.T) {
	// "for i = 1 to 1 then ..." executes zero iterations: the inline body's
	// collected result list is therefore empty.
	engine := basic.New()
	value, err := engine.Run("<test>", "for i = 1 to 1 then i")
	require.Nil(t, err)
	require.Equal(t, "[]", value.Render())

	// "for i = 5 to 0 step -1 then ..." executes 5 iterations: i = 5,4,3,2,1.
	value, err = engine.Run("<test>", "for i = 5 to 0 step -1 then i")
	require.Nil(t, err)
	require.Equal(t, "[5, 4, 3, 2, 1]", value.Render())
}

func TestArityMismatchErrorText(t *testing.T) {
	engine := basic.New()
	_, err := engine.Run("<test>", "func add(a, b) -> a + b\nadd(1, 2, 3)")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "1 too many args passed into 'add'")

	_, err = engine.Run("<test>", "func add(a, b) -> a + b\nadd(1)")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "1 too few args passed into 'add'")
}

func TestGlobalEnvironmentPersistsAcrossRuns(t *testing.T) {
	// spec.md §5: the global symbol table is shared across successive Run
	// calls on the same Engine.
	engine := basic.New()

	_, err := engine.Run("<test>", "var counter = 1")
	require.Nil(t, err)

	value, err := engine.Run("<test>", "var counter = counter + 1\ncounter")
	require.Nil(t, err)
	require.Equal(t, "2", value.Render())
}

func TestListNegativeIndexing(t *testing.T) {
	engine := basic.New()
	value, err := engine.Run("<test>", "[10, 20, 30] / -1")
	require.Nil(t, err)
	require.Equal(t, "30", value.Render())
}
