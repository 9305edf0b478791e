package service

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// EmployeeBadgeQR encodes the employee profile link into a png badge the
// office prints for clock-in scanning.
func EmployeeBadgeQR(baseUrl string, employeeID int) ([]byte, error) {
	content := fmt.Sprintf("%s/api/v1/user/%d", baseUrl, employeeID)
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encoding qr badge: %w", err)
	}
	return png, nil
}
