package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	for _, test := range []struct {
		v    *LVal
		want string
	}{
		{Nil(), "()"},
		{Number(5), "5"},
		{Number(5.0), "5"},
		{Number(-3), "-3"},
		{Number(2.5), "2.5"},
		{Number(-0.125), "-0.125"},
		{Symbol("foo"), "foo"},
		{Symbol(TrueSymbol), "#t"},
		{List(Number(1), Number(2), Number(3)), "(1 2 3)"},
		{List(), "()"},
		{Cons(Number(1), Number(2)), "(1 . 2)"},
		{Cons(Number(1), Cons(Number(2), Number(3))), "(1 2 . 3)"},
		{List(Symbol("a"), List(Symbol("b")), Nil()), "(a (b) ())"},
		{Fun("fid", Formals("x"), builtinCAR), "<primitive>"},
	} {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestLambdaString(t *testing.T) {
	env := NewEnv(nil)
	fn := Lambda(Formals("x"), Symbol("x"), env)
	assert.Equal(t, "<lambda>", fn.String())
}

func TestListStructure(t *testing.T) {
	lis := List(Number(1), Number(2))
	assert.Equal(t, LPair, lis.Type)
	assert.Equal(t, 2, lis.Len())
	assert.Equal(t, float64(1), lis.Car.Num)
	assert.Equal(t, float64(2), lis.Cdr.Car.Num)
	assert.True(t, lis.Cdr.Cdr.IsNil())

	cells := lis.Cells()
	assert.Len(t, cells, 2)
	assert.Same(t, lis.Car, cells[0])

	// an improper tail does not count toward the length
	assert.Equal(t, 1, Cons(Number(1), Number(2)).Len())
}

func TestBool(t *testing.T) {
	assert.Equal(t, LSymbol, Bool(true).Type)
	assert.Equal(t, TrueSymbol, Bool(true).Str)
	assert.True(t, Bool(false).IsNil())
}
