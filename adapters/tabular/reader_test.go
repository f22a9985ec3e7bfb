package tabular

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godrsa/domain/analysis"
	"godrsa/domain/core"
	"godrsa/domain/dataset"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTableCSV(t *testing.T) {
	path := writeTempCSV(t, "cars.csv",
		"price:cond:cost,comfort:cond:gain,class:dec:gain\n"+
			"30,1,1\n"+
			"20,2,2\n"+
			"10,3,3\n")

	table, err := NewDataReader().ReadTable(path)
	require.NoError(t, err)

	assert.Equal(t, "cars", table.Name())
	assert.Equal(t, 3, table.NumberOfObjects())
	assert.Equal(t, 3, table.NumberOfAttributes())
	assert.Equal(t, []int{0, 1}, table.ConditionCriteria())

	price, err := table.Attribute(0)
	require.NoError(t, err)
	assert.Equal(t, "price", price.Name)
	assert.Equal(t, dataset.KindCondition, price.Kind)
	assert.Equal(t, dataset.PreferenceCost, price.Pref)

	class, err := table.Attribute(2)
	require.NoError(t, err)
	assert.Equal(t, dataset.KindDecision, class.Kind)

	// Cost scale: lower price is at least as good
	assert.True(t, table.Evaluation(2, 0).AtLeastAsGoodAs(table.Evaluation(0, 0)))
	assert.Equal(t, 2.0, table.Evaluation(1, 2).Value)
}

func TestReadTableMissingValues(t *testing.T) {
	path := writeTempCSV(t, "gaps.csv",
		"q:cond:gain,class:dec:gain\n"+
			"1,1\n"+
			"?,2\n"+
			"3,\n")

	table, err := NewDataReader().ReadTable(path)
	require.NoError(t, err)

	assert.True(t, table.Evaluation(1, 0).Missing)
	assert.True(t, table.Evaluation(2, 1).Missing)
	assert.False(t, table.AllDecisionsFullyDetermined())
}

func TestReadTableHeaderErrors(t *testing.T) {
	cases := map[string]string{
		"unknown kind": "q:weird:gain,class:dec:gain\n1,1\n",
		"unknown pref": "q:cond:sideways,class:dec:gain\n1,1\n",
		"empty name":   ":cond:gain,class:dec:gain\n1,1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeTempCSV(t, "bad.csv", content)
			_, err := NewDataReader().ReadTable(path)
			require.Error(t, err)
		})
	}
}

func TestReadTableRejectsBadCells(t *testing.T) {
	path := writeTempCSV(t, "bad.csv",
		"q:cond:gain,class:dec:gain\n"+
			"1,high\n")
	_, err := NewDataReader().ReadTable(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class")
}

func TestReadTableMissingFile(t *testing.T) {
	_, err := NewDataReader().ReadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadTableUnsupportedExtension(t *testing.T) {
	path := writeTempCSV(t, "table.txt", "q:cond:gain\n1\n")
	_, err := NewDataReader().ReadTable(path)
	require.Error(t, err)
}

func TestWriteResultJSON(t *testing.T) {
	accuracy := 1.0
	result := analysis.NewResult(core.TableID(core.NewID()), "cars", core.NewHash([]byte("rows")), "classical")
	result.ObjectCount = 3
	result.Upward = []analysis.UnionSummary{{
		Type:             "at_least",
		LimitingDecision: "2=2",
		Members:          []int{1, 2},
		Lower:            []int{1, 2},
		Upper:            []int{1, 2},
		Accuracy:         &accuracy,
		Quality:          1,
	}}
	result.QualityOfClassification = 1

	var buf bytes.Buffer
	require.NoError(t, WriteResultJSON(&buf, result))

	var decoded analysis.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, result.ID, decoded.ID)
	assert.Equal(t, result.Fingerprint, decoded.Fingerprint)
	require.Len(t, decoded.Upward, 1)
	assert.Equal(t, []int{1, 2}, decoded.Upward[0].Members)
}
