package authentication

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientTokenRoundTrip(t *testing.T) {
	token, err := GeneratePatientToken(42, "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := verifyPatientToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.PatientID)
	assert.Equal(t, "jane@example.com", claims.PatientEmail)
}

func TestDoctorTokenRoundTrip(t *testing.T) {
	token, err := GenerateDoctorToken(7, "dr@example.com")
	require.NoError(t, err)

	claims, err := verifyDoctorToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.Id)
	assert.Equal(t, "dr@example.com", claims.DoctorEmail)
}

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken("root")
	require.NoError(t, err)

	claims, err := verifyAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "root", claims.Username)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	token, err := GeneratePatientToken(42, "jane@example.com")
	require.NoError(t, err)

	_, err = verifyDoctorToken(token)
	assert.Error(t, err)

	_, err = verifyAdminToken(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := verifyPatientToken("not-a-token")
	assert.Error(t, err)
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	require.Len(t, otp, 6)
	for _, ch := range otp {
		assert.True(t, ch >= '0' && ch <= '9')
	}
}

func TestValidateOTP(t *testing.T) {
	assert.True(t, ValidateOTP("123456", "123456"))
	assert.False(t, ValidateOTP("123456", "654321"))
	assert.False(t, ValidateOTP("", "123456"))
}
