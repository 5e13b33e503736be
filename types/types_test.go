package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, Params{Per: 1, MinPS: 1, MinRec: 1}.Validate())

	tests := []struct {
		name   string
		params Params
	}{
		{"zero per", Params{Per: 0, MinPS: 1, MinRec: 1}},
		{"negative per", Params{Per: -3, MinPS: 1, MinRec: 1}},
		{"zero minPS", Params{Per: 1, MinPS: 0, MinRec: 1}},
		{"zero minRec", Params{Per: 1, MinPS: 1, MinRec: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			require.Error(t, err)
			var paramErr *InvalidParameterError
			assert.ErrorAs(t, err, &paramErr)
		})
	}
}

func TestParamsValidateNamesOffendingParameter(t *testing.T) {
	err := Params{Per: 1, MinPS: -1, MinRec: 1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minPS")
}

func TestItemKeyDistinguishesTypes(t *testing.T) {
	assert.NotEqual(t, ItemKey(1), ItemKey("1"))
	assert.Equal(t, ItemKey("a"), ItemKey("a"))
	assert.Equal(t, "<nil>", ItemKey(nil))
}

func TestPatternKeyOrderInsensitive(t *testing.T) {
	p1 := Pattern{Items: []interface{}{"a", "b", "c"}}
	p2 := Pattern{Items: []interface{}{"c", "a", "b"}}
	assert.Equal(t, p1.Key(), p2.Key())

	p3 := Pattern{Items: []interface{}{"a", "b"}}
	assert.NotEqual(t, p1.Key(), p3.Key())
}

func TestPatternString(t *testing.T) {
	p := Pattern{Items: []interface{}{"a", "b"}, Recurrence: 2, Support: 3}
	assert.Equal(t, "{a b}(rec=2,ps=3)", p.String())
}

func TestSortItems(t *testing.T) {
	items := []interface{}{"c", "a", "b"}
	SortItems(items)
	assert.Equal(t, []interface{}{"a", "b", "c"}, items)
}
