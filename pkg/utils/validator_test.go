package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mergeBody struct {
	SourceID int64 `validate:"gt=0"`
	TargetID int64 `validate:"gt=0,nefield=SourceID"`
}

type renameBody struct {
	Name string `validate:"required,max=100"`
}

func TestValidateStructPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(mergeBody{SourceID: 1, TargetID: 2}))
	assert.NoError(t, ValidateStruct(renameBody{Name: "Alex"}))
}

func TestValidateStructDescribesFailures(t *testing.T) {
	err := ValidateStruct(renameBody{})
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())

	err = ValidateStruct(mergeBody{SourceID: 3, TargetID: 3})
	require.Error(t, err)
	assert.Equal(t, "targetid must differ from sourceid", err.Error())

	err = ValidateStruct(mergeBody{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sourceid must be greater than 0")
	assert.Contains(t, err.Error(), "targetid must be greater than 0")
}
