package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/types"
)

func TestStringArray_Scan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan([]byte(`["Python", "React"]`)))
	assert.Equal(t, StringArray{"Python", "React"}, a)
}

func TestStringArray_Scan_Null(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(nil))
	assert.NotNil(t, a)
	assert.Empty(t, a)
}

func TestStringArray_Scan_WrongType(t *testing.T) {
	var a StringArray
	assert.Error(t, a.Scan(42))
}

func TestStringArray_Value(t *testing.T) {
	v, err := StringArray{"Go", "SQL"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["Go", "SQL"]`, string(v.([]byte)))
}

func TestStringArray_Value_Nil(t *testing.T) {
	var a StringArray
	v, err := a.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)
}

func TestJSONBRoundTrip(t *testing.T) {
	in := []types.EducationEntry{{Degree: "B.S. Computer Science", Institution: "State U", Year: "2020"}}

	data, err := jsonb(in)
	require.NoError(t, err)

	var out []types.EducationEntry
	require.NoError(t, scanJSONB(data, &out))
	assert.Equal(t, in, out)
}

func TestScanJSONB_NullLeavesDestinationUntouched(t *testing.T) {
	var out []types.ExperienceEntry
	require.NoError(t, scanJSONB(nil, &out))
	assert.Nil(t, out)
}
