package cli

import (
	"GameAdmin/internal/client"
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type app struct {
	server    string
	tokenPath string
	client    *client.Client
}

// NewRootCommand 构造 adminctl 命令树。
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Terminal client for the game admin panel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	server := os.Getenv(client.EnvServerURL)
	if server == "" {
		server = client.DefaultServerURL
	}
	root.PersistentFlags().StringVar(&a.server, "server", server, "admin server base URL (env "+client.EnvServerURL+")")
	root.PersistentFlags().StringVar(&a.tokenPath, "token-file", "", "token file (default $XDG_CONFIG_HOME/gameadmin/token)")

	root.AddCommand(a.loginCmd(), a.registerCmd(), a.logoutCmd(), a.configsCmd())
	return root
}

func (a *app) init() error {
	path := a.tokenPath
	if path == "" {
		p, err := client.DefaultTokenPath()
		if err != nil {
			return err
		}
		path = p
	}
	a.client = client.New(a.server, client.NewTokenStore(path))
	return nil
}

// Execute 运行命令，失败时打印红色横幅并返回退出码。
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(stderr, errMessage(err))
		return 1
	}
	return 0
}

func errMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		msg := apiErr.Msg
		for _, k := range []string{"username", "email", "password"} {
			if m, ok := apiErr.Fields[k]; ok && m != msg {
				msg += "; " + m
			}
		}
		return msg
	}
	return err.Error()
}
