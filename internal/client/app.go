package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/osphor/internal/adapter"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/models"
)

// Environment variables consulted when the matching flag is not given.
const (
	SecretEnv = "OSPHOR_SECRET"
	TokenEnv  = "OSPHOR_TOKEN"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
)

const usage = `usage: osphorctl [-a address] <command> [flags]

commands:
  register -u <username> [-display name] [-avatar ref] [-data '{"k":v}']
  login    -u <username>
  validate [-token t]
  players
  player   <username>
  me       [-token t]

secrets are read from -secret or $OSPHOR_SECRET, tokens from -token or $OSPHOR_TOKEN`

type App struct {
	server adapter.ServerAdapter
	out    io.Writer
	getenv func(string) string

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{server: server, out: out, getenv: os.Getenv, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return ErrMissingArgs
	}

	command, args := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running client command")

	switch command {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "validate":
		return a.validate(ctx, args)
	case "players":
		players, err := a.server.ListPlayers(ctx)
		if err != nil {
			return err
		}
		return a.print(players)
	case "player":
		if len(args) != 1 {
			return fmt.Errorf("%w: player <username>", ErrMissingArgs)
		}
		player, err := a.server.GetPlayer(ctx, args[0])
		if err != nil {
			return err
		}
		return a.print(player)
	case "me":
		return a.me(ctx, args)
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	username := fs.String("u", "", "username")
	secret := fs.String("secret", "", "account secret")
	display := fs.String("display", "", "display name")
	avatar := fs.String("avatar", "", "avatar reference")
	data := fs.String("data", "", "custom data as a JSON object")
	if err := fs.Parse(args); err != nil {
		return err
	}

	player := models.Player{Username: *username, Display: *display, Avatar: *avatar}
	if *data != "" {
		if err := json.Unmarshal([]byte(*data), &player.Data); err != nil {
			return fmt.Errorf("parse -data: %w", err)
		}
	}

	created, err := a.server.Register(ctx, player, a.orEnv(*secret, SecretEnv))
	if err != nil {
		return err
	}
	return a.print(created)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	username := fs.String("u", "", "username")
	secret := fs.String("secret", "", "account secret")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.server.Login(ctx, *username, a.orEnv(*secret, SecretEnv))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, token)
	return err
}

func (a *App) validate(ctx context.Context, args []string) error {
	fs := newFlagSet("validate")
	token := fs.String("token", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.server.Validate(ctx, a.orEnv(*token, TokenEnv))
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *App) me(ctx context.Context, args []string) error {
	fs := newFlagSet("me")
	token := fs.String("token", "", "session token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a.server.SetToken(a.orEnv(*token, TokenEnv))
	player, err := a.server.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(player)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) orEnv(value, env string) string {
	if value != "" {
		return value
	}
	return a.getenv(env)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
