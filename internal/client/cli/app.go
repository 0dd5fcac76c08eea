// Package cli implements the interactive password manager client: a
// small REPL over the three backend endpoints.
package cli

import (
	"bufio"
	"os"

	"github.com/soteriapass/pswmgr/internal/client/client"
	"github.com/soteriapass/pswmgr/internal/client/config"
)

type App struct {
	config   *config.Config
	client   client.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Close() error {
	return a.client.Close()
}
