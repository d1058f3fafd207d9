package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMap_SetKeepsInsertionOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("zebra", 1)
	m.Set("apple", 2)
	m.Set("mango", 3)
	m.Set("zebra", 4) // existing key keeps its slot

	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.Equal(t, []int{4, 2, 3}, m.Values())

	v, ok := m.Get("zebra")
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMap_Delete(t *testing.T) {
	m := FromPairs(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"c", 3})
	m.Delete("b")
	m.Delete("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
	assert.Equal(t, 2, m.Len())
}

func TestMap_FromPairsRepeatedKey(t *testing.T) {
	m := FromPairs(Pair[string, int]{"a", 1}, Pair[string, int]{"b", 2}, Pair[string, int]{"a", 3})

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, 3, v)
}

func TestMap_Reorder(t *testing.T) {
	m := FromPairs(
		Pair[string, int]{"a", 1},
		Pair[string, int]{"b", 2},
		Pair[string, int]{"c", 3},
		Pair[string, int]{"d", 4},
	)

	m.Reorder([]string{"c", "missing", "a", "c"})

	assert.Equal(t, []string{"c", "a", "b", "d"}, m.Keys())
}

func TestMap_All(t *testing.T) {
	m := FromPairs(Pair[int, string]{3, "x"}, Pair[int, string]{1, "y"})

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{3, 1}, keys)
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := FromPairs(Pair[string, int]{"a", 1})
	c := m.Clone()
	c.Set("b", 2)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestMap_MarshalJSONPreservesOrder(t *testing.T) {
	inner := FromPairs(Pair[string, any]{"y", int64(2)}, Pair[string, any]{"x", "b"})
	m := FromPairs(Pair[string, any]{"z", inner}, Pair[string, any]{"a", []any{true, nil}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":{"y":2,"x":"b"},"a":[true,null]}`, string(data))
}

func TestMap_MarshalJSONNil(t *testing.T) {
	var m *Map[string, int]
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestMap_MarshalYAMLPreservesOrder(t *testing.T) {
	m := FromPairs(Pair[string, any]{"zebra", 1}, Pair[string, any]{"apple", []any{"x"}})

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "zebra: 1\napple:\n    - x\n", string(data))
}
