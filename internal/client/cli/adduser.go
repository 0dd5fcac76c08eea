package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/soteriapass/pswmgr/internal/common"
)

// writeFile is a test seam for os.WriteFile.
var writeFile = os.WriteFile

// AddUser provisions a new account. When 2FA enrollment is requested,
// the secret, the scratch codes and a QR code PNG are disclosed once;
// none of them can be retrieved again.
func (a *App) AddUser(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	answer, err := getSimpleText(a.reader, "Enable two factor authentication? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	add2FA := strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")

	enrollment, err := a.client.CreateUser(ctx, userName, string(password), add2FA)
	if err != nil {
		return err
	}

	fmt.Println("Success!")

	if enrollment == nil {
		return nil
	}

	fmt.Printf("Secret: %s\n", enrollment.Secret)
	fmt.Println("Scratch codes:")
	for _, code := range enrollment.ScratchCodes {
		fmt.Printf("  %d\n", code)
	}

	if len(enrollment.QRCode) > 0 {
		qrFile := userName + "-qr.png"
		if err := writeFile(qrFile, enrollment.QRCode, 0o600); err != nil {
			return fmt.Errorf("error saving qr code: %w", err)
		}
		fmt.Printf("QR code saved to %s\n", qrFile)
	}

	return nil
}
