package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorJSONOmitsPassword(t *testing.T) {
	doctor := Doctor{
		DoctorID:  1,
		Name:      "Dr. Asha Varma",
		Specialty: "Cardiology",
		Email:     "asha@example.com",
		Password:  "$2a$10$notarealhashnotarealhashnotare",
		Phone:     "9999999999",
	}

	data, err := json.Marshal(doctor)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "$2a$10$")
	assert.NotContains(t, string(data), "password")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "asha@example.com", decoded["email"])
}
