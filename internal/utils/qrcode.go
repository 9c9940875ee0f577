package utils

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateOrderQR génère le QR code PNG d'un numéro de commande
// (scanné au retrait ou à la livraison)
func GenerateOrderQR(orderID string) ([]byte, error) {
	return qrcode.Encode(orderID, qrcode.Medium, 256)
}
