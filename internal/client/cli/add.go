package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/soteriapass/pswmgr/internal/client/client"
	"github.com/soteriapass/pswmgr/internal/common"
)

// Add prompts for a new vault entry and stores it.
func (a *App) Add(ctx context.Context) error {
	accountName, err := getSimpleText(a.reader, "Enter account name", os.Stdout)
	if err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter account username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	extra, err := getSimpleText(a.reader, "Enter extra details (optional)", os.Stdout)
	if err != nil {
		return err
	}

	cred := client.Credential{
		AccountName: accountName,
		Username:    userName,
		Password:    string(password),
		Extra:       extra,
	}
	if err := a.client.AddPassword(ctx, cred); err != nil {
		return err
	}

	fmt.Println("Success!")
	return nil
}
