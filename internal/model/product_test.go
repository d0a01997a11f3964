package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductType_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProductType
		wantErr bool
	}{
		{name: "number", input: `1`, want: ProductTypeSport},
		{name: "quoted number", input: `"2"`, want: ProductTypeTeam},
		{name: "name", input: `"team"`, want: ProductTypeTeam},
		{name: "null", input: `null`, want: ProductTypeUndefined},
		{name: "zero", input: `0`, want: ProductTypeUndefined},
		{name: "out of range", input: `42`, wantErr: true},
		{name: "negative", input: `-1`, wantErr: true},
		{name: "unknown name", input: `"League"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p ProductModel
			err := json.Unmarshal([]byte(`{"ProductType":`+tt.input+`}`), &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ProductType)
		})
	}
}

func TestProductType_UnmarshalParam(t *testing.T) {
	var pt ProductType
	require.NoError(t, pt.UnmarshalParam(" Sport "))
	assert.Equal(t, ProductTypeSport, pt)

	assert.Error(t, pt.UnmarshalParam("7"))
	assert.Equal(t, ProductTypeSport, pt)
}

func TestCommentModel_Validate(t *testing.T) {
	ok := CommentModel{ID: "c1", Comment: "Great team"}
	assert.NoError(t, ok.Validate())

	long := CommentModel{ID: "c2", Comment: strings.Repeat("x", 501)}
	assert.Error(t, long.Validate())
}
