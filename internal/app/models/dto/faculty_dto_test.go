package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/models"
)

func TestNewFacultyResponse(t *testing.T) {
	resp := NewFacultyResponse(&models.Faculty{ID: 3, Name: "Dr. Deepa Menon"})

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "Dr. Deepa Menon", resp.Name)
}

func TestNewFacultyListResponse_EmptyEncodesAsArray(t *testing.T) {
	data, err := json.Marshal(NewFacultyListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNewFacultyListResponse_PreservesOrder(t *testing.T) {
	responses := NewFacultyListResponse([]*models.Faculty{
		{ID: 1, Name: "Dr. Anita Sharma"},
		{ID: 2, Name: "Dr. Arun Nair"},
	})

	require.Len(t, responses, 2)
	assert.Equal(t, "Dr. Anita Sharma", responses[0].Name)
	assert.Equal(t, "Dr. Arun Nair", responses[1].Name)
}
