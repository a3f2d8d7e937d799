package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/favonia/regrobot/internal/tree"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	for kind, expected := range map[tree.Kind]string{
		tree.KindNull:   "null",
		tree.KindString: "string",
		tree.KindNumber: "number",
		tree.KindList:   "list",
		tree.KindObject: "object",
		tree.Kind(42):   "kind(42)",
	} {
		require.Equal(t, expected, kind.String())
	}
}

func TestZeroValueIsNull(t *testing.T) {
	t.Parallel()

	var v tree.Value
	require.True(t, v.IsNull())
	require.True(t, v.IsScalar())
	require.True(t, v.Equal(tree.Null()))
	require.Nil(t, v.Items())
}

func TestObjectDuplicateKeys(t *testing.T) {
	t.Parallel()

	v := tree.Object(
		tree.Field{Key: "a", Value: tree.Int(1)},
		tree.Field{Key: "b", Value: tree.Int(2)},
		tree.Field{Key: "a", Value: tree.Int(3)},
	)

	require.Equal(t, []string{"a", "b"}, v.Keys())
	a, ok := v.Get("a")
	require.True(t, ok)
	require.True(t, a.Equal(tree.Int(3)))
}

func TestWith(t *testing.T) {
	t.Parallel()

	base := tree.Object(tree.Field{Key: "a", Value: tree.String("x")})

	extended, ok := base.With("b", tree.String("y"))
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, extended.Keys())
	require.Equal(t, []string{"a"}, base.Keys())

	replaced, ok := extended.With("a", tree.String("z"))
	require.True(t, ok)
	require.Equal(t, `{"a":"z","b":"y"}`, replaced.String())

	fromNull, ok := tree.Null().With("k", tree.Int(1))
	require.True(t, ok)
	require.Equal(t, `{"k":1}`, fromNull.String())

	scalar := tree.String("s")
	same, ok := scalar.With("k", tree.Int(1))
	require.False(t, ok)
	require.True(t, same.Equal(scalar))
}

func TestListCopiesItems(t *testing.T) {
	t.Parallel()

	items := []tree.Value{tree.String("a"), tree.String("b")}
	v := tree.List(items...)
	items[0] = tree.String("changed")

	got := v.Items()
	require.Len(t, got, 2)
	require.True(t, got[0].Equal(tree.String("a")))

	got[1] = tree.String("changed")
	require.True(t, v.Items()[1].Equal(tree.String("b")))
}

func TestItems(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input    tree.Value
		expected []tree.Value
	}{
		"null":   {tree.Null(), nil},
		"scalar": {tree.String("a"), []tree.Value{tree.String("a")}},
		"list":   {tree.Strings("a", "b"), []tree.Value{tree.String("a"), tree.String("b")}},
		"object": {
			tree.Object(tree.Field{Key: "k", Value: tree.Null()}),
			[]tree.Value{tree.Object(tree.Field{Key: "k", Value: tree.Null()})},
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := tc.input.Items()
			require.Len(t, got, len(tc.expected))
			for i := range got {
				require.True(t, tc.expected[i].Equal(got[i]))
			}
		})
	}
}

func TestTextAndInt64(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		input  tree.Value
		text   string
		textOk bool
		i      int64
		iOk    bool
	}{
		"number":      {tree.Number("1000"), "1000", true, 1000, true},
		"int":         {tree.Int(-5), "-5", true, -5, true},
		"string-int":  {tree.String("2400"), "2400", true, 2400, true},
		"string":      {tree.String("OK"), "OK", true, 0, false},
		"float":       {tree.Number("1.5"), "1.5", true, 0, false},
		"null":        {tree.Null(), "", false, 0, false},
		"list":        {tree.Strings("1"), "", false, 0, false},
		"empty-token": {tree.String(""), "", true, 0, false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			text, ok := tc.input.Text()
			require.Equal(t, tc.textOk, ok)
			require.Equal(t, tc.text, text)

			i, ok := tc.input.Int64()
			require.Equal(t, tc.iOk, ok)
			require.Equal(t, tc.i, i)
		})
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	v := tree.Object(tree.Field{Key: "a", Value: tree.Object(tree.Field{Key: "b", Value: tree.String("c")})})

	got, ok := v.Lookup("a", "b")
	require.True(t, ok)
	require.True(t, got.Equal(tree.String("c")))

	_, ok = v.Lookup("a", "x")
	require.False(t, ok)

	_, ok = v.Lookup("a", "b", "c")
	require.False(t, ok)

	self, ok := v.Lookup()
	require.True(t, ok)
	require.True(t, self.Equal(v))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		a, b     tree.Value
		expected bool
	}{
		"number-vs-string": {tree.Number("1"), tree.String("1"), false},
		"same-number":      {tree.Int(1), tree.Number("1"), true},
		"list-length":      {tree.Strings("a"), tree.Strings("a", "b"), false},
		"list-order":       {tree.Strings("a", "b"), tree.Strings("b", "a"), false},
		"object-key-order": {
			tree.Object(tree.Field{Key: "a", Value: tree.Null()}, tree.Field{Key: "b", Value: tree.Null()}),
			tree.Object(tree.Field{Key: "b", Value: tree.Null()}, tree.Field{Key: "a", Value: tree.Null()}),
			false,
		},
		"empty-object-vs-null": {tree.Object(), tree.Null(), false},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, tc.a.Equal(tc.b))
			require.Equal(t, tc.expected, tc.b.Equal(tc.a))
		})
	}
}
