package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDesiredVariant_OptionsPresence(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantNil   bool
		wantCount int
	}{
		{"Absent", `{"name_ar":"a","name_en":"b"}`, true, 0},
		{"Null", `{"name_ar":"a","name_en":"b","options":null}`, true, 0},
		{"Empty", `{"name_ar":"a","name_en":"b","options":[]}`, false, 0},
		{"Two", `{"name_ar":"a","name_en":"b","options":[{"price":1},{"price":"x"}]}`, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v DesiredVariant
			require.NoError(t, json.Unmarshal([]byte(tt.body), &v))
			if tt.wantNil {
				assert.Nil(t, v.Options)
				return
			}
			require.NotNil(t, v.Options)
			assert.Len(t, *v.Options, tt.wantCount)
		})
	}
}

func TestUpdateRequest_Variants(t *testing.T) {
	var withVariants, without UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title_en":"x","variants":[]}`), &withVariants))
	require.NoError(t, json.Unmarshal([]byte(`{"title_en":"x"}`), &without))

	assert.NotNil(t, withVariants.Variants)
	assert.Equal(t, "x", *withVariants.TitleEn)
	assert.Nil(t, without.Variants)
}

func TestScalarFields(t *testing.T) {
	t.Run("Blank Required", func(t *testing.T) {
		err := ScalarFields{TitleAr: strPtr("  ")}.Validate()
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Columns", func(t *testing.T) {
		cols := ScalarFields{
			TitleEn:       strPtr(" Shirt "),
			DescriptionAr: strPtr(""),
			ImageURL:      strPtr("http://x/y.jpg"),
		}.Columns()

		assert.Equal(t, map[string]any{
			"title_en":       "Shirt",
			"description_ar": nil,
			"image_url":      "http://x/y.jpg",
		}, cols)
	})
}

func TestCreateRequest(t *testing.T) {
	req := CreateRequest{TitleAr: "قميص", TitleEn: "Shirt", CategoryID: "c1", DescriptionEn: strPtr("")}
	require.NoError(t, req.Validate())

	item := req.Item("user-1")
	assert.Equal(t, "user-1", item.UserID)
	assert.Nil(t, item.DescriptionEn)

	assert.ErrorIs(t, CreateRequest{TitleAr: "a", TitleEn: "b"}.Validate(), ErrValidation)
}
