package system

import (
	"bufio"
	"errors"
	"strings"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/gateway"
	"github.com/julianstephens/myday/internal/keyring"
)

// KeySetCmd stores the Gemini API key in the OS keyring
type KeySetCmd struct {
	Key string `arg:"" optional:"" help:"API key to store. Read from standard input when omitted."`
}

func (cmd *KeySetCmd) Run(ctx *cli.Context) error {
	key := cmd.Key
	if key == "" {
		if ctx.Interactive {
			ctx.Print("Gemini API key: ")
		}
		line, err := bufio.NewReader(ctx.In).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no API key given")
		}
		key = line
	}

	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}

	ctx.Printf("✓ API key %s stored in OS keyring\n", keyring.Mask(strings.TrimSpace(key)))
	return nil
}

// KeyDeleteCmd removes the API key from the OS keyring
type KeyDeleteCmd struct{}

func (cmd *KeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return err
	}

	ctx.Println("✓ API key deleted from OS keyring")
	return nil
}

// KeyStatusCmd reports which API key would be used and where it came from
type KeyStatusCmd struct{}

func (cmd *KeyStatusCmd) Run(ctx *cli.Context) error {
	if keyring.IsAvailable() {
		ctx.Println("✓ OS keyring is available")
	} else {
		ctx.Println("❌ OS keyring is not available on this system")
	}

	key, source, err := gateway.ResolveAPIKey(ctx.APIKey)
	if err != nil {
		ctx.Println("ℹ No API key configured; insights and tips are disabled")
		return nil
	}
	ctx.Printf("✓ Using API key %s from %s\n", keyring.Mask(key), source)
	return nil
}
