package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/dailylog/internal/client/client"
	"github.com/dmitrijs2005/dailylog/internal/client/config"
	pb "github.com/dmitrijs2005/dailylog/internal/proto"
)

type App struct {
	config    *config.Config
	client    client.Client
	account   *pb.Account
	pendingID string
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	if err := a.client.Ping(ctx); err != nil {
		log.Printf("server %s is not reachable yet: %v", a.config.ServerEndpointAddr, err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}
