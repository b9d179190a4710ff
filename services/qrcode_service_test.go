// file: services/qrcode_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockQRCodeEncoderSuccess(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return []byte("qr:" + content), nil
}

func mockQRCodeEncoderFailure(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return nil, errors.New("QR code generation failed")
}

func TestGenerateQRCode_Success(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:8080/register", 256, mockQRCodeEncoderSuccess)

	assert.NoError(t, err)
	assert.Equal(t, "qr:http://localhost:8080/register", string(data))
}

func TestGenerateQRCode_InvalidSize(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:8080/register", -100, mockQRCodeEncoderSuccess)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "invalid dimensions: size must be positive", err.Error())
}

func TestGenerateQRCode_EmptyContent(t *testing.T) {
	_, err := GenerateQRCode("  ", 256, mockQRCodeEncoderSuccess)
	assert.Error(t, err)
}

func TestGenerateQRCode_EncoderFails(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:8080/register", 256, mockQRCodeEncoderFailure)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "QR code generation failed", err.Error())
}

func TestGenerateQRCode_RealEncoderProducesPNG(t *testing.T) {
	data, err := GenerateQRCode("http://localhost:8080/register", 128, nil)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
