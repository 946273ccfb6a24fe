/*
File    : skai/std/std_test.go
Package : std
*/
package std

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/skai/environment"
	"github.com/akashmaji946/skai/value"
)

func TestRegister_NoNameCollisions(t *testing.T) {
	env := environment.New()
	assert.NotPanics(t, func() {
		Register(env)
	})
	for _, name := range []string{"print", "prompt", "type_of", "time", "sleep", "random",
		"pow", "abs", "sqrt", "floor", "ceil", "min", "max", "length", "upper", "lower",
		"trim", "split", "join", "contains", "reverse", "push", "pop", "contains_array",
		"reverse_array", "sort_array"} {
		_, err := env.Get(name)
		assert.NoError(t, err, "builtin %q should be registered", name)
	}
}

func TestBiTypeOf(t *testing.T) {
	result, err := biTypeOf([]value.Value{value.Integer(1)})
	assert.NoError(t, err)
	assert.Equal(t, value.String("integer"), result)
}

func TestBiPow(t *testing.T) {
	result, err := biPow([]value.Value{value.Integer(2), value.Integer(10)})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(1024), result)
}

func TestBiPow_NegativeExponentIsError(t *testing.T) {
	_, err := biPow([]value.Value{value.Integer(2), value.Integer(-1)})
	assert.Error(t, err)
}

func TestBiAbs_PreservesType(t *testing.T) {
	i, err := biAbs([]value.Value{value.Integer(-5)})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(5), i)

	f, err := biAbs([]value.Value{value.Float(-2.5)})
	assert.NoError(t, err)
	assert.Equal(t, value.Float(2.5), f)
}

func TestBiMinMax_PreserveOriginalType(t *testing.T) {
	result, err := biMin([]value.Value{value.Integer(3), value.Float(1.5)})
	assert.NoError(t, err)
	assert.Equal(t, value.Float(1.5), result)

	result, err = biMax([]value.Value{value.Integer(3), value.Float(1.5)})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(3), result)
}

func TestBiRandom_RespectsBounds(t *testing.T) {
	for i := 0; i < 20; i++ {
		result, err := biRandom([]value.Value{value.Integer(5), value.Integer(5)})
		assert.NoError(t, err)
		assert.Equal(t, value.Integer(5), result)
	}
}

func TestBiRandom_RejectsInvertedRange(t *testing.T) {
	_, err := biRandom([]value.Value{value.Integer(10), value.Integer(5)})
	assert.Error(t, err)
}

func TestBiLength_StringAndArray(t *testing.T) {
	result, err := biLength([]value.Value{value.String("hello")})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(5), result)

	arr := value.NewArray([]value.Value{value.Integer(1), value.Integer(2)})
	result, err = biLength([]value.Value{arr})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(2), result)
}

func TestBiSplitAndJoin_RoundTrip(t *testing.T) {
	split, err := biSplit([]value.Value{value.String("a,b,c"), value.String(",")})
	assert.NoError(t, err)

	joined, err := biJoin([]value.Value{split, value.String("-")})
	assert.NoError(t, err)
	assert.Equal(t, value.String("a-b-c"), joined)
}

func TestBiReverse(t *testing.T) {
	result, err := biReverse([]value.Value{value.String("abc")})
	assert.NoError(t, err)
	assert.Equal(t, value.String("cba"), result)
}

func TestBiContains(t *testing.T) {
	result, err := biContains([]value.Value{value.String("hello world"), value.String("world")})
	assert.NoError(t, err)
	assert.Equal(t, value.Bool(true), result)
}

func TestBiPushAndPop(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Integer(1)})
	_, err := biPush([]value.Value{arr, value.Integer(2)})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(*arr.Elements))

	popped, err := biPop([]value.Value{arr})
	assert.NoError(t, err)
	assert.Equal(t, value.Integer(2), popped)
	assert.Equal(t, 1, len(*arr.Elements))
}

func TestBiPop_EmptyArrayIsError(t *testing.T) {
	arr := value.NewArray(nil)
	_, err := biPop([]value.Value{arr})
	assert.Error(t, err)
}

func TestBiSortArray_Numbers(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Integer(3), value.Integer(1), value.Integer(2)})
	result, err := biSortArray([]value.Value{arr})
	assert.NoError(t, err)
	sorted := result.(value.Array)
	assert.Equal(t, []value.Value{value.Integer(1), value.Integer(2), value.Integer(3)}, *sorted.Elements)
	// original is untouched
	assert.Equal(t, value.Integer(3), (*arr.Elements)[0])
}

func TestBiSortArray_MixedTypesIsError(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Integer(1), value.String("x")})
	_, err := biSortArray([]value.Value{arr})
	assert.Error(t, err)
}

func TestBiReverseArray_ReturnsNewArray(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Integer(1), value.Integer(2)})
	result, err := biReverseArray([]value.Value{arr})
	assert.NoError(t, err)
	reversed := result.(value.Array)
	assert.Equal(t, []value.Value{value.Integer(2), value.Integer(1)}, *reversed.Elements)
	assert.Equal(t, value.Integer(1), (*arr.Elements)[0])
}

func TestBiContainsArray(t *testing.T) {
	arr := value.NewArray([]value.Value{value.Integer(1), value.String("x")})
	result, err := biContainsArray([]value.Value{arr, value.String("x")})
	assert.NoError(t, err)
	assert.Equal(t, value.Bool(true), result)

	result, err = biContainsArray([]value.Value{arr, value.Integer(99)})
	assert.NoError(t, err)
	assert.Equal(t, value.Bool(false), result)
}
