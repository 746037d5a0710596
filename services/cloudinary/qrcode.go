package cloudinary

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// QRCodeBase64 renders a PNG QR code for the given URL and returns it
// base64-encoded, ready to inline into a JSON response.
func QRCodeBase64(photoURL string) (string, error) {
	png, err := qrcode.Encode(photoURL, qrcode.Medium, qrSize)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
